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

package mysql

import (
	"database/sql"
	"time"

	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
)

const (
	TablesTableSchema = iota
	TablesTableName
	TablesTableType
	TablesEngine
	TablesTableRows
	TablesAvgRowLength
	TablesDataLength
	TablesAutoIncrement
	TablesCreateTime
	TablesUpdateTime
	TablesTableCollation
	TablesTableComment
)

// Table is one row of information_schema.tables.
type Table struct {
	TableSchema    string
	TableName      string
	TableType      string
	Engine         sql.Null[string]
	TableRows      sql.Null[int64]
	AvgRowLength   sql.Null[int64]
	DataLength     sql.Null[int64]
	AutoIncrement  sql.Null[int64]
	CreateTime     sql.Null[time.Time]
	UpdateTime     sql.Null[time.Time]
	TableCollation sql.Null[string]
	TableComment   sql.Null[string]
}

// Tables lists the tables of one database, named by the only parameter.
var Tables = newView("information_schema.tables", `SELECT
	table_schema, table_name, table_type, engine, table_rows,
	avg_row_length, data_length, auto_increment, create_time, update_time,
	table_collation, table_comment
FROM information_schema.tables
WHERE table_schema = ?
ORDER BY table_name`, 1,
	cursor.MustSchema(
		cursor.Col("table_schema", types.KindString),
		cursor.Col("table_name", types.KindString),
		cursor.Col("table_type", types.KindString),
		cursor.NullableCol("engine", types.KindString),
		cursor.NullableCol("table_rows", types.KindInt64),
		cursor.NullableCol("avg_row_length", types.KindInt64),
		cursor.NullableCol("data_length", types.KindInt64),
		cursor.NullableCol("auto_increment", types.KindInt64),
		cursor.NullableCol("create_time", types.KindDatetime),
		cursor.NullableCol("update_time", types.KindDatetime),
		cursor.NullableCol("table_collation", types.KindString),
		cursor.NullableCol("table_comment", types.KindString),
	),
	func(c *cursor.Cursor) (Table, error) {
		r := cursor.NewRowReader(c)
		return Table{
			TableSchema:    cursor.Field[string](r, TablesTableSchema),
			TableName:      cursor.Field[string](r, TablesTableName),
			TableType:      cursor.Field[string](r, TablesTableType),
			Engine:         cursor.NullableField[string](r, TablesEngine),
			TableRows:      cursor.NullableField[int64](r, TablesTableRows),
			AvgRowLength:   cursor.NullableField[int64](r, TablesAvgRowLength),
			DataLength:     cursor.NullableField[int64](r, TablesDataLength),
			AutoIncrement:  cursor.NullableField[int64](r, TablesAutoIncrement),
			CreateTime:     cursor.NullableField[time.Time](r, TablesCreateTime),
			UpdateTime:     cursor.NullableField[time.Time](r, TablesUpdateTime),
			TableCollation: cursor.NullableField[string](r, TablesTableCollation),
			TableComment:   cursor.NullableField[string](r, TablesTableComment),
		}, r.Err()
	})
