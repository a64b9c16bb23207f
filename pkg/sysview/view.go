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

package sysview

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
	"github.com/matrixorigin/sysview/pkg/logutil"
	v2 "github.com/matrixorigin/sysview/pkg/util/metric/v2"
)

// Querier runs a query. *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// View reads one system catalog or management view. Query, Schema and Row
// form one contract: Row reads the ordinals Schema declares, from the
// columns Query selects.
type View[R any] struct {
	Name  string
	Query string
	// Params is the number of arguments Query takes.
	Params  int
	Dialect types.Dialect
	Schema  cursor.Schema
	Row     cursor.RowFunc[R]
	Options []cursor.Option
}

// WithOptions returns a copy of the view whose cursors get opts on top of
// the view's own options.
func (v *View[R]) WithOptions(opts ...cursor.Option) *View[R] {
	cp := *v
	cp.Options = append(append([]cursor.Option(nil), v.Options...), opts...)
	return &cp
}

func (v *View[R]) cursorOptions(extra ...cursor.Option) []cursor.Option {
	opts := make([]cursor.Option, 0, len(v.Options)+len(extra)+2)
	opts = append(opts, cursor.WithName(v.Name), cursor.WithSchema(v.Schema))
	opts = append(opts, v.Options...)
	return append(opts, extra...)
}

// Open runs the view query and returns a cursor owning the result.
func (v *View[R]) Open(ctx context.Context, q Querier, args ...any) (*cursor.Cursor, error) {
	if len(args) != v.Params {
		return nil, moerr.NewInvalidInput("%s takes %d parameters, got %d", v.Name, v.Params, len(args))
	}
	rows, err := q.QueryContext(ctx, v.Query, args...)
	if err != nil {
		return nil, err
	}
	return cursor.New(cursor.FromRows(rows, v.Dialect), v.cursorOptions()...)
}

// Wrap reads rows the caller already holds. The cursor borrows rows, the
// caller still closes them.
func (v *View[R]) Wrap(rows *sql.Rows, opts ...cursor.Option) (*cursor.Cursor, error) {
	return cursor.New(cursor.FromRows(rows, v.Dialect), v.cursorOptions(append(opts, cursor.WithBorrowed())...)...)
}

// MaterializeRow builds the record of the current row.
func (v *View[R]) MaterializeRow(c *cursor.Cursor) (R, error) {
	return v.Row(c)
}

// MaterializeAll builds the records of every remaining row of c.
func (v *View[R]) MaterializeAll(c *cursor.Cursor) ([]R, error) {
	rs, err := cursor.MaterializeAll(c, v.Row)
	if err != nil {
		return nil, err
	}
	v2.ViewRowsCounter.WithLabelValues(v.Name).Add(float64(len(rs)))
	return rs, nil
}

// ReadAll opens the view, reads it to the end and closes it.
func (v *View[R]) ReadAll(ctx context.Context, q Querier, args ...any) (rs []R, err error) {
	start := time.Now()
	c, err := v.Open(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, c.Close())
		if err != nil {
			rs = nil
			return
		}
		v2.ViewReadDurationHistogram.WithLabelValues(v.Name).Observe(time.Since(start).Seconds())
		logutil.Debug("view read",
			zap.String("view", v.Name),
			zap.Int("rows", len(rs)),
			logutil.Elapsed(start))
	}()
	return v.MaterializeAll(c)
}
