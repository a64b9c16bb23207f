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
	RecoveryStatusDatabaseID = iota
	RecoveryStatusDatabaseGuid
	RecoveryStatusFamilyGuid
	RecoveryStatusLastLogBackupLsn
	RecoveryStatusRecoveryForkGuid
	RecoveryStatusFirstRecoveryForkGuid
	RecoveryStatusForkPointLsn
)

// RecoveryStatus is one row of sys.database_recovery_status. Log sequence
// numbers are numeric(25,0) and read exactly.
type RecoveryStatus struct {
	DatabaseID            int32
	DatabaseGuid          sql.Null[types.Guid]
	FamilyGuid            sql.Null[types.Guid]
	LastLogBackupLsn      sql.Null[types.Decimal]
	RecoveryForkGuid      sql.Null[types.Guid]
	FirstRecoveryForkGuid sql.Null[types.Guid]
	ForkPointLsn          sql.Null[types.Decimal]
}

var DatabaseRecoveryStatus = newView("sys.database_recovery_status", `SELECT
	database_id, database_guid, family_guid, last_log_backup_lsn,
	recovery_fork_guid, first_recovery_fork_guid, fork_point_lsn
FROM sys.database_recovery_status`, 0,
	cursor.MustSchema(
		cursor.Col("database_id", types.KindInt32),
		cursor.NullableCol("database_guid", types.KindGuid),
		cursor.NullableCol("family_guid", types.KindGuid),
		cursor.NullableCol("last_log_backup_lsn", types.KindDecimal),
		cursor.NullableCol("recovery_fork_guid", types.KindGuid),
		cursor.NullableCol("first_recovery_fork_guid", types.KindGuid),
		cursor.NullableCol("fork_point_lsn", types.KindDecimal),
	),
	func(c *cursor.Cursor) (RecoveryStatus, error) {
		r := cursor.NewRowReader(c)
		return RecoveryStatus{
			DatabaseID:            cursor.Field[int32](r, RecoveryStatusDatabaseID),
			DatabaseGuid:          cursor.NullableField[types.Guid](r, RecoveryStatusDatabaseGuid),
			FamilyGuid:            cursor.NullableField[types.Guid](r, RecoveryStatusFamilyGuid),
			LastLogBackupLsn:      cursor.NullableField[types.Decimal](r, RecoveryStatusLastLogBackupLsn),
			RecoveryForkGuid:      cursor.NullableField[types.Guid](r, RecoveryStatusRecoveryForkGuid),
			FirstRecoveryForkGuid: cursor.NullableField[types.Guid](r, RecoveryStatusFirstRecoveryForkGuid),
			ForkPointLsn:          cursor.NullableField[types.Decimal](r, RecoveryStatusForkPointLsn),
		}, r.Err()
	})
