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
	ColumnsObjectID = iota
	ColumnsName
	ColumnsColumnID
	ColumnsSystemTypeID
	ColumnsUserTypeID
	ColumnsMaxLength
	ColumnsPrecision
	ColumnsScale
	ColumnsCollationName
	ColumnsIsNullable
	ColumnsIsIdentity
	ColumnsIsComputed
	ColumnsDefaultObjectID
)

// Column is one row of sys.columns.
type Column struct {
	ObjectID        int32
	Name            sql.Null[string]
	ColumnID        int32
	SystemTypeID    uint8
	UserTypeID      int32
	MaxLength       int16
	Precision       uint8
	Scale           uint8
	CollationName   sql.Null[string]
	IsNullable      sql.Null[bool]
	IsIdentity      bool
	IsComputed      bool
	DefaultObjectID int32
}

var Columns = newView("sys.columns", `SELECT
	object_id, name, column_id, system_type_id, user_type_id, max_length,
	precision, scale, collation_name, is_nullable, is_identity, is_computed,
	default_object_id
FROM sys.columns`, 0,
	cursor.MustSchema(
		cursor.Col("object_id", types.KindInt32),
		cursor.NullableCol("name", types.KindString),
		cursor.Col("column_id", types.KindInt32),
		cursor.Col("system_type_id", types.KindUint8),
		cursor.Col("user_type_id", types.KindInt32),
		cursor.Col("max_length", types.KindInt16),
		cursor.Col("precision", types.KindUint8),
		cursor.Col("scale", types.KindUint8),
		cursor.NullableCol("collation_name", types.KindString),
		cursor.NullableCol("is_nullable", types.KindBool),
		cursor.Col("is_identity", types.KindBool),
		cursor.Col("is_computed", types.KindBool),
		cursor.Col("default_object_id", types.KindInt32),
	),
	func(c *cursor.Cursor) (Column, error) {
		r := cursor.NewRowReader(c)
		return Column{
			ObjectID:        cursor.Field[int32](r, ColumnsObjectID),
			Name:            cursor.NullableField[string](r, ColumnsName),
			ColumnID:        cursor.Field[int32](r, ColumnsColumnID),
			SystemTypeID:    cursor.Field[uint8](r, ColumnsSystemTypeID),
			UserTypeID:      cursor.Field[int32](r, ColumnsUserTypeID),
			MaxLength:       cursor.Field[int16](r, ColumnsMaxLength),
			Precision:       cursor.Field[uint8](r, ColumnsPrecision),
			Scale:           cursor.Field[uint8](r, ColumnsScale),
			CollationName:   cursor.NullableField[string](r, ColumnsCollationName),
			IsNullable:      cursor.NullableField[bool](r, ColumnsIsNullable),
			IsIdentity:      cursor.Field[bool](r, ColumnsIsIdentity),
			IsComputed:      cursor.Field[bool](r, ColumnsIsComputed),
			DefaultObjectID: cursor.Field[int32](r, ColumnsDefaultObjectID),
		}, r.Err()
	})
