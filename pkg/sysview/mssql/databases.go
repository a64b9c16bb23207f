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
	"time"

	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
)

const (
	DatabasesName = iota
	DatabasesDatabaseID
	DatabasesSourceDatabaseID
	DatabasesOwnerSid
	DatabasesCreateDate
	DatabasesCompatibilityLevel
	DatabasesCollationName
	DatabasesUserAccessDesc
	DatabasesIsReadOnly
	DatabasesStateDesc
	DatabasesRecoveryModelDesc
	DatabasesLogReuseWaitDesc
	DatabasesServiceBrokerGuid
	DatabasesIsEncrypted
)

// Database is one row of sys.databases.
type Database struct {
	Name               string
	DatabaseID         int32
	SourceDatabaseID   sql.Null[int32]
	OwnerSid           []byte
	CreateDate         time.Time
	CompatibilityLevel uint8
	CollationName      sql.Null[string]
	UserAccessDesc     sql.Null[string]
	IsReadOnly         sql.Null[bool]
	StateDesc          sql.Null[string]
	RecoveryModelDesc  sql.Null[string]
	LogReuseWaitDesc   sql.Null[string]
	ServiceBrokerGuid  sql.Null[types.Guid]
	IsEncrypted        sql.Null[bool]
}

var Databases = newView("sys.databases", `SELECT
	name, database_id, source_database_id, owner_sid, create_date,
	compatibility_level, collation_name, user_access_desc, is_read_only,
	state_desc, recovery_model_desc, log_reuse_wait_desc,
	service_broker_guid, is_encrypted
FROM sys.databases`, 0,
	cursor.MustSchema(
		cursor.Col("name", types.KindString),
		cursor.Col("database_id", types.KindInt32),
		cursor.NullableCol("source_database_id", types.KindInt32),
		cursor.NullableCol("owner_sid", types.KindBytes),
		cursor.Col("create_date", types.KindDatetime),
		cursor.Col("compatibility_level", types.KindUint8),
		cursor.NullableCol("collation_name", types.KindString),
		cursor.NullableCol("user_access_desc", types.KindString),
		cursor.NullableCol("is_read_only", types.KindBool),
		cursor.NullableCol("state_desc", types.KindString),
		cursor.NullableCol("recovery_model_desc", types.KindString),
		cursor.NullableCol("log_reuse_wait_desc", types.KindString),
		cursor.NullableCol("service_broker_guid", types.KindGuid),
		cursor.NullableCol("is_encrypted", types.KindBool),
	),
	readDatabase)

func readDatabase(c *cursor.Cursor) (Database, error) {
	r := cursor.NewRowReader(c)
	db := Database{
		Name:               cursor.Field[string](r, DatabasesName),
		DatabaseID:         cursor.Field[int32](r, DatabasesDatabaseID),
		SourceDatabaseID:   cursor.NullableField[int32](r, DatabasesSourceDatabaseID),
		CreateDate:         cursor.Field[time.Time](r, DatabasesCreateDate),
		CompatibilityLevel: cursor.Field[uint8](r, DatabasesCompatibilityLevel),
		CollationName:      cursor.NullableField[string](r, DatabasesCollationName),
		UserAccessDesc:     cursor.NullableField[string](r, DatabasesUserAccessDesc),
		IsReadOnly:         cursor.NullableField[bool](r, DatabasesIsReadOnly),
		StateDesc:          cursor.NullableField[string](r, DatabasesStateDesc),
		RecoveryModelDesc:  cursor.NullableField[string](r, DatabasesRecoveryModelDesc),
		LogReuseWaitDesc:   cursor.NullableField[string](r, DatabasesLogReuseWaitDesc),
		ServiceBrokerGuid:  cursor.NullableField[types.Guid](r, DatabasesServiceBrokerGuid),
		IsEncrypted:        cursor.NullableField[bool](r, DatabasesIsEncrypted),
	}
	// a NULL sid stays nil
	if sid := cursor.NullableField[[]byte](r, DatabasesOwnerSid); sid.Valid {
		db.OwnerSid = sid.V
	}
	return db, r.Err()
}
