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

// Package mssql reads SQL Server catalog views and dynamic management
// views through github.com/microsoft/go-mssqldb.
package mssql

import (
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
	"github.com/matrixorigin/sysview/pkg/sysview"
)

// DriverName is the database/sql driver the views are written for.
const DriverName = "sqlserver"

func newView[R any](name, query string, params int, schema cursor.Schema, row func(*cursor.Cursor) (R, error)) *sysview.View[R] {
	return &sysview.View[R]{
		Name:    name,
		Query:   query,
		Params:  params,
		Dialect: types.DialectMSSQL,
		Schema:  schema,
		Row:     row,
		// uniqueidentifier arrives in wire order
		Options: []cursor.Option{cursor.WithMixedEndianGuid()},
	}
}

// Register adds every view of the package to r.
func Register(r *sysview.Registry) {
	r.MustRegister(
		Databases,
		Columns,
		ExtendedProperties,
		DatabaseRecoveryStatus,
		ExecSessions,
		ExecQueryStats,
		DescribeFirstResultSet,
		DatabaseFiles,
	)
}
