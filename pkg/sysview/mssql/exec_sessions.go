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
	ExecSessionsSessionID = iota
	ExecSessionsLoginTime
	ExecSessionsHostName
	ExecSessionsProgramName
	ExecSessionsHostProcessID
	ExecSessionsLoginName
	ExecSessionsStatus
	ExecSessionsCPUTime
	ExecSessionsMemoryUsage
	ExecSessionsTotalElapsedTime
	ExecSessionsLastRequestStartTime
	ExecSessionsLastRequestEndTime
	ExecSessionsReads
	ExecSessionsWrites
	ExecSessionsLogicalReads
	ExecSessionsIsUserProcess
	ExecSessionsSecurityID
	ExecSessionsDatabaseID
	ExecSessionsOpenTransactionCount
)

// Session is one row of sys.dm_exec_sessions.
type Session struct {
	SessionID            int16
	LoginTime            time.Time
	HostName             sql.Null[string]
	ProgramName          sql.Null[string]
	HostProcessID        sql.Null[int32]
	LoginName            string
	Status               string
	CPUTime              int32
	MemoryUsage          int32
	TotalElapsedTime     int32
	LastRequestStartTime time.Time
	LastRequestEndTime   sql.Null[time.Time]
	Reads                int64
	Writes               int64
	LogicalReads         int64
	IsUserProcess        bool
	SecurityID           []byte
	DatabaseID           int16
	OpenTransactionCount int32
}

var ExecSessions = newView("sys.dm_exec_sessions", `SELECT
	session_id, login_time, host_name, program_name, host_process_id,
	login_name, status, cpu_time, memory_usage, total_elapsed_time,
	last_request_start_time, last_request_end_time, reads, writes,
	logical_reads, is_user_process, security_id, database_id,
	open_transaction_count
FROM sys.dm_exec_sessions`, 0,
	cursor.MustSchema(
		cursor.Col("session_id", types.KindInt16),
		cursor.Col("login_time", types.KindDatetime),
		cursor.NullableCol("host_name", types.KindString),
		cursor.NullableCol("program_name", types.KindString),
		cursor.NullableCol("host_process_id", types.KindInt32),
		cursor.Col("login_name", types.KindString),
		cursor.Col("status", types.KindString),
		cursor.Col("cpu_time", types.KindInt32),
		cursor.Col("memory_usage", types.KindInt32),
		cursor.Col("total_elapsed_time", types.KindInt32),
		cursor.Col("last_request_start_time", types.KindDatetime),
		cursor.NullableCol("last_request_end_time", types.KindDatetime),
		cursor.Col("reads", types.KindInt64),
		cursor.Col("writes", types.KindInt64),
		cursor.Col("logical_reads", types.KindInt64),
		cursor.Col("is_user_process", types.KindBool),
		cursor.Col("security_id", types.KindBytes),
		cursor.Col("database_id", types.KindInt16),
		cursor.Col("open_transaction_count", types.KindInt32),
	),
	func(c *cursor.Cursor) (Session, error) {
		r := cursor.NewRowReader(c)
		return Session{
			SessionID:            cursor.Field[int16](r, ExecSessionsSessionID),
			LoginTime:            cursor.Field[time.Time](r, ExecSessionsLoginTime),
			HostName:             cursor.NullableField[string](r, ExecSessionsHostName),
			ProgramName:          cursor.NullableField[string](r, ExecSessionsProgramName),
			HostProcessID:        cursor.NullableField[int32](r, ExecSessionsHostProcessID),
			LoginName:            cursor.Field[string](r, ExecSessionsLoginName),
			Status:               cursor.Field[string](r, ExecSessionsStatus),
			CPUTime:              cursor.Field[int32](r, ExecSessionsCPUTime),
			MemoryUsage:          cursor.Field[int32](r, ExecSessionsMemoryUsage),
			TotalElapsedTime:     cursor.Field[int32](r, ExecSessionsTotalElapsedTime),
			LastRequestStartTime: cursor.Field[time.Time](r, ExecSessionsLastRequestStartTime),
			LastRequestEndTime:   cursor.NullableField[time.Time](r, ExecSessionsLastRequestEndTime),
			Reads:                cursor.Field[int64](r, ExecSessionsReads),
			Writes:               cursor.Field[int64](r, ExecSessionsWrites),
			LogicalReads:         cursor.Field[int64](r, ExecSessionsLogicalReads),
			IsUserProcess:        cursor.Field[bool](r, ExecSessionsIsUserProcess),
			SecurityID:           cursor.Field[[]byte](r, ExecSessionsSecurityID),
			DatabaseID:           cursor.Field[int16](r, ExecSessionsDatabaseID),
			OpenTransactionCount: cursor.Field[int32](r, ExecSessionsOpenTransactionCount),
		}, r.Err()
	})
