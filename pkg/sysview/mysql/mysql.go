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

// Package mysql reads information_schema views of MySQL protocol engines,
// MatrixOne included, through github.com/go-sql-driver/mysql.
package mysql

import (
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
	"github.com/matrixorigin/sysview/pkg/sysview"
)

const DriverName = "mysql"

func newView[R any](name, query string, params int, schema cursor.Schema, row func(*cursor.Cursor) (R, error)) *sysview.View[R] {
	return &sysview.View[R]{
		Name:    name,
		Query:   query,
		Params:  params,
		Dialect: types.DialectMySQL,
		Schema:  schema,
		Row:     row,
	}
}

// Register adds every view of the package to r.
func Register(r *sysview.Registry) {
	r.MustRegister(Tables, Columns, Processlist)
}
