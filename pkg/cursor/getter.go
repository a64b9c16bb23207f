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
	"time"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/container/types"
)

// Primitive is the closed set of Go types a column can be read as.
type Primitive interface {
	int16 | int32 | int64 | uint8 | bool | float32 | float64 | string | []byte |
		types.Decimal | types.Guid | time.Time
}

// KindOf returns the column kind read by T.
func KindOf[T Primitive]() types.Kind {
	var zero T
	switch any(zero).(type) {
	case int16:
		return types.KindInt16
	case int32:
		return types.KindInt32
	case int64:
		return types.KindInt64
	case uint8:
		return types.KindUint8
	case bool:
		return types.KindBool
	case float32:
		return types.KindFloat32
	case float64:
		return types.KindFloat64
	case string:
		return types.KindString
	case []byte:
		return types.KindBytes
	case types.Decimal:
		return types.KindDecimal
	case types.Guid:
		return types.KindGuid
	case time.Time:
		return types.KindDatetime
	}
	return types.KindUnknown
}

// Get reads a non nullable column. A NULL value is ErrNullNotAllowed.
func Get[T Primitive](c *Cursor, ordinal int) (T, error) {
	var zero T
	raw, err := typedColumn[T](c, ordinal)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, c.fault(moerr.NewNullNotAllowed(c.name, ordinal, c.columnName(ordinal), KindOf[T]().String()))
	}
	return convert[T](c, ordinal, raw)
}

// GetNullable reads a nullable column. NULL is checked before conversion,
// so a value that fails to convert is an error and never reported as NULL.
func GetNullable[T Primitive](c *Cursor, ordinal int) (sql.Null[T], error) {
	raw, err := typedColumn[T](c, ordinal)
	if err != nil {
		return sql.Null[T]{}, err
	}
	if raw == nil {
		return sql.Null[T]{}, nil
	}
	v, err := convert[T](c, ordinal, raw)
	if err != nil {
		return sql.Null[T]{}, err
	}
	return sql.Null[T]{V: v, Valid: true}, nil
}

// Variant reads any column as an opaque value. It never fails on kind and
// is the only way to read sql_variant columns.
func (c *Cursor) Variant(ordinal int) (types.Variant, error) {
	raw, err := c.column(ordinal)
	if err != nil {
		return types.Variant{}, err
	}
	return types.NewVariant(raw), nil
}

// declaredKind is the kind the driver reports for the column, falling back
// to the bound schema.
func (c *Cursor) declaredKind(ordinal int) types.Kind {
	if k := c.shape[ordinal].Kind; k != types.KindUnknown {
		return k
	}
	if ordinal < c.schema.Len() {
		return c.schema.Column(ordinal).Kind
	}
	return types.KindUnknown
}

func typedColumn[T Primitive](c *Cursor, ordinal int) (any, error) {
	raw, err := c.column(ordinal)
	if err != nil {
		return nil, err
	}
	want := KindOf[T]()
	if have := c.declaredKind(ordinal); have != types.KindUnknown && have != want {
		return nil, c.fault(moerr.NewTypeMismatch(c.name, ordinal, c.columnName(ordinal), want.String(),
			"column is %s", have))
	}
	return raw, nil
}

func convert[T Primitive](c *Cursor, ordinal int, raw any) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *int16:
		*p, err = types.ToInt[int16](raw)
	case *int32:
		*p, err = types.ToInt[int32](raw)
	case *int64:
		*p, err = types.ToInt[int64](raw)
	case *uint8:
		*p, err = types.ToInt[uint8](raw)
	case *bool:
		*p, err = types.ToBool(raw)
	case *float32:
		*p, err = types.ToFloat32(raw)
	case *float64:
		*p, err = types.ToFloat64(raw)
	case *string:
		*p, err = types.ToString(raw)
	case *[]byte:
		*p, err = types.ToBytes(raw)
	case *types.Decimal:
		*p, err = types.ToDecimal(raw)
	case *types.Guid:
		*p, err = types.ToGuid(raw, c.mixedEndianGuid)
	case *time.Time:
		*p, err = types.ToDatetime(raw)
	}
	if err != nil {
		var zero T
		return zero, c.fault(moerr.NewTypeMismatch(c.name, ordinal, c.columnName(ordinal), KindOf[T]().String(),
			"%v", err))
	}
	return out, nil
}
