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
	"fmt"
	"strings"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/container/types"
)

// Column declares one column of a view: its position in the schema is its
// ordinal.
type Column struct {
	Name     string
	Kind     types.Kind
	Nullable bool
}

func (c Column) String() string {
	if c.Nullable {
		return fmt.Sprintf("%s %s NULL", c.Name, c.Kind)
	}
	return fmt.Sprintf("%s %s", c.Name, c.Kind)
}

// Schema is the ordered column contract of a view. The zero Schema is
// unbound and validates nothing.
type Schema struct {
	cols  []Column
	index map[string]int
}

// NewSchema builds a schema. Names are compared case insensitively and
// must be unique.
func NewSchema(cols ...Column) (Schema, error) {
	if len(cols) == 0 {
		return Schema{}, moerr.NewInvalidInput("schema has no columns")
	}
	s := Schema{
		cols:  append([]Column(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.Name == "" {
			return Schema{}, moerr.NewInvalidInput("column %d has no name", i)
		}
		key := strings.ToLower(c.Name)
		if j, ok := s.index[key]; ok {
			return Schema{}, moerr.NewInvalidInput("column %s declared at both %d and %d", c.Name, j, i)
		}
		s.index[key] = i
	}
	return s, nil
}

// MustSchema is NewSchema for package level declarations.
func MustSchema(cols ...Column) Schema {
	s, err := NewSchema(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Schema) Len() int {
	return len(s.cols)
}

func (s Schema) IsZero() bool {
	return len(s.cols) == 0
}

func (s Schema) Column(ordinal int) Column {
	return s.cols[ordinal]
}

// Columns returns a copy of the declared columns.
func (s Schema) Columns() []Column {
	return append([]Column(nil), s.cols...)
}

// Names returns the column names in ordinal order.
func (s Schema) Names() []string {
	names := make([]string, len(s.cols))
	for i, c := range s.cols {
		names[i] = c.Name
	}
	return names
}

// Ordinal returns the ordinal of name, or -1.
func (s Schema) Ordinal(name string) int {
	if i, ok := s.index[strings.ToLower(name)]; ok {
		return i
	}
	return -1
}

// Validate checks a live result shape against the schema and reports every
// difference it finds in one ErrSchemaMismatch. Names the driver leaves
// empty and kinds it reports as Unknown are not compared.
func (s Schema) Validate(shape []ColumnMeta) error {
	return s.validate("schema", shape)
}

func (s Schema) validate(cursor string, shape []ColumnMeta) error {
	if s.IsZero() {
		return nil
	}
	var diffs []string
	if len(shape) != len(s.cols) {
		diffs = append(diffs, fmt.Sprintf("expected %d columns, got %d", len(s.cols), len(shape)))
	}
	n := min(len(shape), len(s.cols))
	for i := 0; i < n; i++ {
		want, got := s.cols[i], shape[i]
		if got.Name != "" && !strings.EqualFold(want.Name, got.Name) {
			diffs = append(diffs, fmt.Sprintf("column %d is %s, expected %s", i, got.Name, want.Name))
		}
		if got.Kind != types.KindUnknown && want.Kind != types.KindUnknown && got.Kind != want.Kind {
			diffs = append(diffs, fmt.Sprintf("column %d (%s) is %s (%s), expected %s",
				i, want.Name, got.Kind, got.DatabaseTypeName, want.Kind))
		}
	}
	if len(diffs) == 0 {
		return nil
	}
	return moerr.NewSchemaMismatch(cursor, "%s", strings.Join(diffs, "; "))
}
