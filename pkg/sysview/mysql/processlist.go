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
	ProcesslistID = iota
	ProcesslistUser
	ProcesslistHost
	ProcesslistDB
	ProcesslistCommand
	ProcesslistTime
	ProcesslistState
	ProcesslistInfo
)

// Process is one row of information_schema.processlist.
type Process struct {
	ID      int64
	User    string
	Host    string
	DB      sql.Null[string]
	Command string
	Time    int32
	State   sql.Null[string]
	Info    sql.Null[string]
}

var Processlist = newView("information_schema.processlist", `SELECT
	id, user, host, db, command, time, state, info
FROM information_schema.processlist
ORDER BY id`, 0,
	cursor.MustSchema(
		cursor.Col("id", types.KindInt64),
		cursor.Col("user", types.KindString),
		cursor.Col("host", types.KindString),
		cursor.NullableCol("db", types.KindString),
		cursor.Col("command", types.KindString),
		cursor.Col("time", types.KindInt32),
		cursor.NullableCol("state", types.KindString),
		cursor.NullableCol("info", types.KindString),
	),
	func(c *cursor.Cursor) (Process, error) {
		r := cursor.NewRowReader(c)
		return Process{
			ID:      cursor.Field[int64](r, ProcesslistID),
			User:    cursor.Field[string](r, ProcesslistUser),
			Host:    cursor.Field[string](r, ProcesslistHost),
			DB:      cursor.NullableField[string](r, ProcesslistDB),
			Command: cursor.Field[string](r, ProcesslistCommand),
			Time:    cursor.Field[int32](r, ProcesslistTime),
			State:   cursor.NullableField[string](r, ProcesslistState),
			Info:    cursor.NullableField[string](r, ProcesslistInfo),
		}, r.Err()
	})
