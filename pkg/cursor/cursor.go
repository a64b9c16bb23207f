// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cursor

import (
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/logutil"
	v2 "github.com/matrixorigin/sysview/pkg/util/metric/v2"
)

type state uint8

const (
	beforeFirst state = iota
	onRow
	done
	closed
)

func (s state) String() string {
	switch s {
	case beforeFirst:
		return "before first row"
	case onRow:
		return "on row"
	case done:
		return "exhausted"
	default:
		return "closed"
	}
}

// Cursor reads a RowSource one row at a time and hands out its columns by
// ordinal as typed, null aware values. A Cursor is not safe for concurrent
// use.
type Cursor struct {
	src    RowSource
	name   string
	owned  bool
	schema Schema
	mode   ValidationMode

	mixedEndianGuid bool
	logger          *zap.Logger

	shape     []ColumnMeta
	validated bool
	state     state
	row       int
	values    []any
	dest      []any
	err       error
}

// New wraps src. The cursor owns src unless WithBorrowed is given, and an
// owned source is closed when New fails. src must be positioned before its
// first row.
func New(src RowSource, opts ...Option) (*Cursor, error) {
	c := &Cursor{
		src:   src,
		name:  "cursor",
		owned: true,
		mode:  ValidateOnOpen,
		row:   -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logutil.GetGlobalLogger().Named("cursor")
	}

	shape, err := src.Shape()
	if err != nil {
		return nil, c.abandon(err)
	}
	c.shape = shape
	c.values = make([]any, len(shape))
	c.dest = make([]any, len(shape))
	for i := range c.values {
		c.dest[i] = &c.values[i]
	}

	if c.mode == ValidateOnOpen {
		if err := c.validate(); err != nil {
			return nil, c.abandon(err)
		}
	}

	v2.CursorOpenCounter.Inc()
	c.logger.Debug("cursor opened",
		zap.String("cursor", c.name),
		zap.Int("columns", len(shape)),
		zap.Bool("owned", c.owned),
		zap.Stringer("validation", c.mode))
	return c, nil
}

func (c *Cursor) abandon(err error) error {
	c.fault(err)
	c.state = closed
	if c.owned {
		err = multierr.Append(err, c.src.Close())
	}
	return err
}

func (c *Cursor) validate() error {
	if c.validated {
		return nil
	}
	c.validated = true
	return c.schema.validate(c.name, c.shape)
}

// fault records err in logs and metrics and returns it unchanged.
func (c *Cursor) fault(err error) error {
	code := "Unknown"
	if me := moerr.DowncastError(err); me != nil {
		code = me.CodeName()
	}
	v2.CursorFaultCounter.WithLabelValues(code).Inc()
	c.logger.Debug("cursor fault",
		zap.String("cursor", c.name),
		zap.String("code", code),
		zap.Int("row", c.row),
		zap.Error(err))
	return err
}

// Advance moves to the next row. It returns false once the rows are
// exhausted or reading failed, see Err, and keeps returning false without
// touching the source afterwards.
func (c *Cursor) Advance() bool {
	if c.state == done || c.state == closed {
		return false
	}
	if c.state == beforeFirst && c.mode == ValidateOnFirstRow {
		if err := c.validate(); err != nil {
			c.err = c.fault(err)
			c.state = done
			return false
		}
	}
	if !c.src.Next() {
		c.state = done
		if err := c.src.Err(); err != nil {
			c.err = c.fault(err)
		}
		return false
	}
	clear(c.values)
	if err := c.src.Scan(c.dest...); err != nil {
		c.err = c.fault(err)
		c.state = done
		return false
	}
	c.row++
	c.state = onRow
	return true
}

// Err returns the error that ended iteration, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Close releases the cursor. An owned source is closed exactly once, a
// borrowed one never. Calling Close again is a no-op.
func (c *Cursor) Close() error {
	if c.state == closed {
		return nil
	}
	c.state = closed
	c.values = nil
	v2.CursorCloseCounter.Inc()
	var err error
	if c.owned {
		err = c.src.Close()
	}
	c.logger.Debug("cursor closed",
		zap.String("cursor", c.name),
		zap.Int("rows", c.row+1),
		zap.Error(err))
	return err
}

func (c *Cursor) Name() string {
	return c.name
}

// RowIndex is the zero based index of the current row, -1 before the
// first.
func (c *Cursor) RowIndex() int {
	return c.row
}

// Columns returns a copy of the result shape.
func (c *Cursor) Columns() []ColumnMeta {
	return append([]ColumnMeta(nil), c.shape...)
}

// Ordinal resolves a column name through the bound schema, or through the
// result shape when no schema is bound.
func (c *Cursor) Ordinal(name string) (int, error) {
	if !c.schema.IsZero() {
		if i := c.schema.Ordinal(name); i >= 0 {
			return i, nil
		}
	} else {
		for i, col := range c.shape {
			if strings.EqualFold(col.Name, name) {
				return i, nil
			}
		}
	}
	return -1, moerr.NewInvalidInput("%s: no column named %s", c.name, name)
}

// column returns the raw value at ordinal on the current row.
func (c *Cursor) column(ordinal int) (any, error) {
	if c.state != onRow {
		return nil, c.fault(moerr.NewInvalidCursorState(c.name, "no current row, cursor is %s", c.state))
	}
	if ordinal < 0 || ordinal >= len(c.values) {
		return nil, c.fault(moerr.NewOrdinalOutOfRange(c.name, ordinal, len(c.values)))
	}
	return c.values[ordinal], nil
}

func (c *Cursor) columnName(ordinal int) string {
	if ordinal < c.schema.Len() {
		return c.schema.Column(ordinal).Name
	}
	if ordinal < len(c.shape) && c.shape[ordinal].Name != "" {
		return c.shape[ordinal].Name
	}
	return "?"
}

// IsNull reports whether the column is SQL NULL on the current row.
func (c *Cursor) IsNull(ordinal int) (bool, error) {
	raw, err := c.column(ordinal)
	if err != nil {
		return false, err
	}
	return raw == nil, nil
}
