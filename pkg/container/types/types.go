// Copyright 2021 - 2024 Matrix Origin
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

package types

import (
	"fmt"
	"strings"
)

// Kind is the protocol level type of a result column. The set is closed,
// every database type name a driver reports maps onto one of these.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBool
	KindUint8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	// KindDecimal is exact fixed point, never read through a float.
	KindDecimal
	KindString
	// KindBytes covers hashes, handles and security identifiers. Bytes are
	// never interpreted as text.
	KindBytes
	KindGuid
	KindDatetime
	// KindVariant is a runtime typed value (sql_variant). It has no typed
	// getter and is only read as an opaque Variant.
	KindVariant
)

var kindNames = [...]string{
	KindUnknown:  "Unknown",
	KindBool:     "Bool",
	KindUint8:    "Uint8",
	KindInt16:    "Int16",
	KindInt32:    "Int32",
	KindInt64:    "Int64",
	KindFloat32:  "Float32",
	KindFloat64:  "Float64",
	KindDecimal:  "Decimal",
	KindString:   "String",
	KindBytes:    "Bytes",
	KindGuid:     "Guid",
	KindDatetime: "Datetime",
	KindVariant:  "Variant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Dialect selects the table used to map driver type names to kinds. The
// same name means different things on different engines, e.g. TINYINT is
// unsigned on SQL Server and signed on MySQL.
type Dialect uint8

const (
	DialectGeneric Dialect = iota
	DialectMySQL
	DialectMSSQL
)

func (d Dialect) String() string {
	switch d {
	case DialectMySQL:
		return "mysql"
	case DialectMSSQL:
		return "mssql"
	default:
		return "generic"
	}
}

// DialectOf maps a database/sql driver name to its dialect.
func DialectOf(driver string) Dialect {
	switch strings.ToLower(driver) {
	case "mysql":
		return DialectMySQL
	case "sqlserver", "mssql", "azuresql":
		return DialectMSSQL
	default:
		return DialectGeneric
	}
}

var mssqlKinds = map[string]Kind{
	"BIT":              KindBool,
	"TINYINT":          KindUint8,
	"SMALLINT":         KindInt16,
	"INT":              KindInt32,
	"BIGINT":           KindInt64,
	"REAL":             KindFloat32,
	"FLOAT":            KindFloat64,
	"DECIMAL":          KindDecimal,
	"NUMERIC":          KindDecimal,
	"MONEY":            KindDecimal,
	"SMALLMONEY":       KindDecimal,
	"CHAR":             KindString,
	"VARCHAR":          KindString,
	"NCHAR":            KindString,
	"NVARCHAR":         KindString,
	"TEXT":             KindString,
	"NTEXT":            KindString,
	"SYSNAME":          KindString,
	"XML":              KindString,
	"BINARY":           KindBytes,
	"VARBINARY":        KindBytes,
	"IMAGE":            KindBytes,
	"TIMESTAMP":        KindBytes,
	"ROWVERSION":       KindBytes,
	"UNIQUEIDENTIFIER": KindGuid,
	"DATE":             KindDatetime,
	"TIME":             KindDatetime,
	"DATETIME":         KindDatetime,
	"DATETIME2":        KindDatetime,
	"SMALLDATETIME":    KindDatetime,
	"DATETIMEOFFSET":   KindDatetime,
	"SQL_VARIANT":      KindVariant,
}

var mysqlKinds = map[string]Kind{
	"BIT":                KindBytes,
	"TINYINT":            KindInt16,
	"UNSIGNED TINYINT":   KindUint8,
	"SMALLINT":           KindInt16,
	"UNSIGNED SMALLINT":  KindInt32,
	"MEDIUMINT":          KindInt32,
	"UNSIGNED MEDIUMINT": KindInt32,
	"INT":                KindInt32,
	"UNSIGNED INT":       KindInt64,
	"BIGINT":             KindInt64,
	// values above math.MaxInt64 fail the int64 conversion instead of
	// wrapping around.
	"UNSIGNED BIGINT": KindInt64,
	"YEAR":            KindInt16,
	"FLOAT":           KindFloat32,
	"DOUBLE":          KindFloat64,
	"DECIMAL":         KindDecimal,
	"CHAR":            KindString,
	"VARCHAR":         KindString,
	"TEXT":            KindString,
	"ENUM":            KindString,
	"SET":             KindString,
	"JSON":            KindString,
	"TIME":            KindString,
	"BINARY":          KindBytes,
	"VARBINARY":       KindBytes,
	"BLOB":            KindBytes,
	"GEOMETRY":        KindBytes,
	"DATE":            KindDatetime,
	"DATETIME":        KindDatetime,
	"TIMESTAMP":       KindDatetime,
	// MatrixOne specific
	"UUID": KindGuid,
}

// KindOf maps a driver reported database type name to a Kind. Unknown
// names, including the empty name of drivers that report nothing, map to
// KindUnknown.
func (d Dialect) KindOf(typeName string) Kind {
	name := strings.ToUpper(strings.TrimSpace(typeName))
	switch d {
	case DialectMySQL:
		return mysqlKinds[name]
	case DialectMSSQL:
		return mssqlKinds[name]
	default:
		if k, ok := mssqlKinds[name]; ok {
			return k
		}
		return mysqlKinds[name]
	}
}
