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

package mssql

import (
	"database/sql"

	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
)

const (
	DescribeIsHidden = iota
	DescribeColumnOrdinal
	DescribeName
	DescribeIsNullable
	DescribeSystemTypeID
	DescribeSystemTypeName
	DescribeMaxLength
	DescribePrecision
	DescribeScale
	DescribeCollationName
	DescribeIsIdentityColumn
	DescribeIsPartOfUniqueKey
	DescribeErrorNumber
	DescribeErrorMessage
)

// ResultColumn is one row of sys.dm_exec_describe_first_result_set: one
// column of the first result set the analyzed batch would return.
type ResultColumn struct {
	IsHidden          bool
	ColumnOrdinal     int32
	Name              sql.Null[string]
	IsNullable        bool
	SystemTypeID      sql.Null[int32]
	SystemTypeName    sql.Null[string]
	MaxLength         sql.Null[int16]
	Precision         sql.Null[uint8]
	Scale             sql.Null[uint8]
	CollationName     sql.Null[string]
	IsIdentityColumn  sql.Null[bool]
	IsPartOfUniqueKey sql.Null[bool]
	ErrorNumber       sql.Null[int32]
	ErrorMessage      sql.Null[string]
}

// DescribeFirstResultSet takes the batch text to analyze as its only
// parameter. The text is passed through untouched.
var DescribeFirstResultSet = newView("sys.dm_exec_describe_first_result_set", `SELECT
	is_hidden, column_ordinal, name, is_nullable, system_type_id,
	system_type_name, max_length, precision, scale, collation_name,
	is_identity_column, is_part_of_unique_key, error_number, error_message
FROM sys.dm_exec_describe_first_result_set(@p1, NULL, 0)`, 1,
	cursor.MustSchema(
		cursor.Col("is_hidden", types.KindBool),
		cursor.Col("column_ordinal", types.KindInt32),
		cursor.NullableCol("name", types.KindString),
		cursor.Col("is_nullable", types.KindBool),
		cursor.NullableCol("system_type_id", types.KindInt32),
		cursor.NullableCol("system_type_name", types.KindString),
		cursor.NullableCol("max_length", types.KindInt16),
		cursor.NullableCol("precision", types.KindUint8),
		cursor.NullableCol("scale", types.KindUint8),
		cursor.NullableCol("collation_name", types.KindString),
		cursor.NullableCol("is_identity_column", types.KindBool),
		cursor.NullableCol("is_part_of_unique_key", types.KindBool),
		cursor.NullableCol("error_number", types.KindInt32),
		cursor.NullableCol("error_message", types.KindString),
	),
	func(c *cursor.Cursor) (ResultColumn, error) {
		r := cursor.NewRowReader(c)
		return ResultColumn{
			IsHidden:          cursor.Field[bool](r, DescribeIsHidden),
			ColumnOrdinal:     cursor.Field[int32](r, DescribeColumnOrdinal),
			Name:              cursor.NullableField[string](r, DescribeName),
			IsNullable:        cursor.Field[bool](r, DescribeIsNullable),
			SystemTypeID:      cursor.NullableField[int32](r, DescribeSystemTypeID),
			SystemTypeName:    cursor.NullableField[string](r, DescribeSystemTypeName),
			MaxLength:         cursor.NullableField[int16](r, DescribeMaxLength),
			Precision:         cursor.NullableField[uint8](r, DescribePrecision),
			Scale:             cursor.NullableField[uint8](r, DescribeScale),
			CollationName:     cursor.NullableField[string](r, DescribeCollationName),
			IsIdentityColumn:  cursor.NullableField[bool](r, DescribeIsIdentityColumn),
			IsPartOfUniqueKey: cursor.NullableField[bool](r, DescribeIsPartOfUniqueKey),
			ErrorNumber:       cursor.NullableField[int32](r, DescribeErrorNumber),
			ErrorMessage:      cursor.NullableField[string](r, DescribeErrorMessage),
		}, r.Err()
	})
