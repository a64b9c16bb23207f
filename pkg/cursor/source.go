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

// ColumnMeta is what the row source reports about one result column.
type ColumnMeta struct {
	Name string
	// DatabaseTypeName is the driver's type name, e.g. "NVARCHAR". Empty
	// when the driver reports nothing.
	DatabaseTypeName string
	Kind             types.Kind
	Nullable         bool
}

//go:generate mockgen -source=source.go -destination=test/source_mock.go -package=mock_cursor

// RowSource is a forward only, single pass result set. *sql.Rows satisfies
// it through FromRows.
type RowSource interface {
	Next() bool
	Err() error
	Close() error
	Scan(dest ...any) error
	// Shape describes the result columns in ordinal order.
	Shape() ([]ColumnMeta, error)
}

type rowsSource struct {
	*sql.Rows
	dialect types.Dialect
}

// FromRows adapts rows. The dialect decides how driver type names map to
// kinds.
func FromRows(rows *sql.Rows, dialect types.Dialect) RowSource {
	return &rowsSource{Rows: rows, dialect: dialect}
}

func (s *rowsSource) Shape() ([]ColumnMeta, error) {
	cts, err := s.ColumnTypes()
	if err != nil {
		return nil, err
	}
	shape := make([]ColumnMeta, len(cts))
	for i, ct := range cts {
		nullable, ok := ct.Nullable()
		shape[i] = ColumnMeta{
			Name:             ct.Name(),
			DatabaseTypeName: ct.DatabaseTypeName(),
			Kind:             s.dialect.KindOf(ct.DatabaseTypeName()),
			// unknown nullability is treated as nullable
			Nullable: nullable || !ok,
		}
	}
	return shape, nil
}
