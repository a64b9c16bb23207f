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

	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
)

const (
	ColumnsTableSchema = iota
	ColumnsTableName
	ColumnsColumnName
	ColumnsOrdinalPosition
	ColumnsColumnDefault
	ColumnsIsNullable
	ColumnsDataType
	ColumnsCharacterMaximumLength
	ColumnsNumericPrecision
	ColumnsNumericScale
	ColumnsColumnType
	ColumnsColumnKey
	ColumnsExtra
	ColumnsColumnComment
)

// Column is one row of information_schema.columns.
type Column struct {
	TableSchema            string
	TableName              string
	ColumnName             string
	OrdinalPosition        int64
	ColumnDefault          sql.Null[string]
	IsNullable             bool
	DataType               string
	CharacterMaximumLength sql.Null[int64]
	NumericPrecision       sql.Null[int64]
	NumericScale           sql.Null[int64]
	ColumnType             string
	ColumnKey              string
	Extra                  sql.Null[string]
	ColumnComment          sql.Null[string]
}

// Columns lists the columns of every table of one database, named by the
// only parameter.
var Columns = newView("information_schema.columns", `SELECT
	table_schema, table_name, column_name, ordinal_position, column_default,
	is_nullable, data_type, character_maximum_length, numeric_precision,
	numeric_scale, column_type, column_key, extra, column_comment
FROM information_schema.columns
WHERE table_schema = ?
ORDER BY table_name, ordinal_position`, 1,
	cursor.MustSchema(
		cursor.Col("table_schema", types.KindString),
		cursor.Col("table_name", types.KindString),
		cursor.Col("column_name", types.KindString),
		cursor.Col("ordinal_position", types.KindInt64),
		cursor.NullableCol("column_default", types.KindString),
		cursor.Col("is_nullable", types.KindString),
		cursor.Col("data_type", types.KindString),
		cursor.NullableCol("character_maximum_length", types.KindInt64),
		cursor.NullableCol("numeric_precision", types.KindInt64),
		cursor.NullableCol("numeric_scale", types.KindInt64),
		cursor.Col("column_type", types.KindString),
		cursor.Col("column_key", types.KindString),
		cursor.NullableCol("extra", types.KindString),
		cursor.NullableCol("column_comment", types.KindString),
	),
	func(c *cursor.Cursor) (Column, error) {
		r := cursor.NewRowReader(c)
		col := Column{
			TableSchema:            cursor.Field[string](r, ColumnsTableSchema),
			TableName:              cursor.Field[string](r, ColumnsTableName),
			ColumnName:             cursor.Field[string](r, ColumnsColumnName),
			OrdinalPosition:        cursor.Field[int64](r, ColumnsOrdinalPosition),
			ColumnDefault:          cursor.NullableField[string](r, ColumnsColumnDefault),
			DataType:               cursor.Field[string](r, ColumnsDataType),
			CharacterMaximumLength: cursor.NullableField[int64](r, ColumnsCharacterMaximumLength),
			NumericPrecision:       cursor.NullableField[int64](r, ColumnsNumericPrecision),
			NumericScale:           cursor.NullableField[int64](r, ColumnsNumericScale),
			ColumnType:             cursor.Field[string](r, ColumnsColumnType),
			ColumnKey:              cursor.Field[string](r, ColumnsColumnKey),
			Extra:                  cursor.NullableField[string](r, ColumnsExtra),
			ColumnComment:          cursor.NullableField[string](r, ColumnsColumnComment),
		}
		// is_nullable is the text YES or NO
		col.IsNullable = cursor.Field[string](r, ColumnsIsNullable) == "YES"
		return col, r.Err()
	})
