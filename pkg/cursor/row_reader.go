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
	"database/sql"

	"github.com/matrixorigin/sysview/pkg/container/types"
)

// Col declares a non nullable column.
func Col(name string, kind types.Kind) Column {
	return Column{Name: name, Kind: kind}
}

// NullableCol declares a nullable column.
func NullableCol(name string, kind types.Kind) Column {
	return Column{Name: name, Kind: kind, Nullable: true}
}

// RowReader reads the columns of the current row one after another and
// keeps the first fault. Once a read failed every later read returns the
// zero value, so a record can be assembled in one expression and checked
// once through Err.
type RowReader struct {
	c   *Cursor
	err error
}

func NewRowReader(c *Cursor) *RowReader {
	return &RowReader{c: c}
}

func (r *RowReader) Err() error {
	return r.err
}

// Field is Get on the reader's cursor.
func Field[T Primitive](r *RowReader, ordinal int) T {
	var v T
	if r.err == nil {
		v, r.err = Get[T](r.c, ordinal)
	}
	return v
}

// NullableField is GetNullable on the reader's cursor.
func NullableField[T Primitive](r *RowReader, ordinal int) sql.Null[T] {
	var v sql.Null[T]
	if r.err == nil {
		v, r.err = GetNullable[T](r.c, ordinal)
	}
	return v
}

func (r *RowReader) Variant(ordinal int) types.Variant {
	var v types.Variant
	if r.err == nil {
		v, r.err = r.c.Variant(ordinal)
	}
	return v
}
