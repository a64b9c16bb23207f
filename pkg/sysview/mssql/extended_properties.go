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
	ExtendedPropertiesClass = iota
	ExtendedPropertiesClassDesc
	ExtendedPropertiesMajorID
	ExtendedPropertiesMinorID
	ExtendedPropertiesName
	ExtendedPropertiesValue
)

// ExtendedProperty is one row of sys.extended_properties. Value is a
// sql_variant and is kept opaque.
type ExtendedProperty struct {
	Class     uint8
	ClassDesc sql.Null[string]
	MajorID   int32
	MinorID   int32
	Name      string
	Value     types.Variant
}

var ExtendedProperties = newView("sys.extended_properties", `SELECT
	class, class_desc, major_id, minor_id, name, value
FROM sys.extended_properties`, 0,
	cursor.MustSchema(
		cursor.Col("class", types.KindUint8),
		cursor.NullableCol("class_desc", types.KindString),
		cursor.Col("major_id", types.KindInt32),
		cursor.Col("minor_id", types.KindInt32),
		cursor.Col("name", types.KindString),
		cursor.NullableCol("value", types.KindVariant),
	),
	func(c *cursor.Cursor) (ExtendedProperty, error) {
		r := cursor.NewRowReader(c)
		return ExtendedProperty{
			Class:     cursor.Field[uint8](r, ExtendedPropertiesClass),
			ClassDesc: cursor.NullableField[string](r, ExtendedPropertiesClassDesc),
			MajorID:   cursor.Field[int32](r, ExtendedPropertiesMajorID),
			MinorID:   cursor.Field[int32](r, ExtendedPropertiesMinorID),
			Name:      cursor.Field[string](r, ExtendedPropertiesName),
			Value:     r.Variant(ExtendedPropertiesValue),
		}, r.Err()
	})
