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
	QueryStatsSQLHandle = iota
	QueryStatsStatementStartOffset
	QueryStatsStatementEndOffset
	QueryStatsPlanGenerationNum
	QueryStatsPlanHandle
	QueryStatsCreationTime
	QueryStatsLastExecutionTime
	QueryStatsExecutionCount
	QueryStatsTotalWorkerTime
	QueryStatsTotalElapsedTime
	QueryStatsTotalLogicalReads
	QueryStatsTotalRows
	QueryStatsQueryHash
	QueryStatsQueryPlanHash
)

// QueryStats is one row of sys.dm_exec_query_stats. Handles and hashes
// are opaque binary.
type QueryStats struct {
	SQLHandle            []byte
	StatementStartOffset int32
	StatementEndOffset   int32
	PlanGenerationNum    sql.Null[int64]
	PlanHandle           []byte
	CreationTime         sql.Null[time.Time]
	LastExecutionTime    sql.Null[time.Time]
	ExecutionCount       int64
	TotalWorkerTime      int64
	TotalElapsedTime     int64
	TotalLogicalReads    int64
	TotalRows            sql.Null[int64]
	QueryHash            []byte
	QueryPlanHash        []byte
}

var ExecQueryStats = newView("sys.dm_exec_query_stats", `SELECT
	sql_handle, statement_start_offset, statement_end_offset,
	plan_generation_num, plan_handle, creation_time, last_execution_time,
	execution_count, total_worker_time, total_elapsed_time,
	total_logical_reads, total_rows, query_hash, query_plan_hash
FROM sys.dm_exec_query_stats`, 0,
	cursor.MustSchema(
		cursor.Col("sql_handle", types.KindBytes),
		cursor.Col("statement_start_offset", types.KindInt32),
		cursor.Col("statement_end_offset", types.KindInt32),
		cursor.NullableCol("plan_generation_num", types.KindInt64),
		cursor.Col("plan_handle", types.KindBytes),
		cursor.NullableCol("creation_time", types.KindDatetime),
		cursor.NullableCol("last_execution_time", types.KindDatetime),
		cursor.Col("execution_count", types.KindInt64),
		cursor.Col("total_worker_time", types.KindInt64),
		cursor.Col("total_elapsed_time", types.KindInt64),
		cursor.Col("total_logical_reads", types.KindInt64),
		cursor.NullableCol("total_rows", types.KindInt64),
		cursor.NullableCol("query_hash", types.KindBytes),
		cursor.NullableCol("query_plan_hash", types.KindBytes),
	),
	func(c *cursor.Cursor) (QueryStats, error) {
		r := cursor.NewRowReader(c)
		return QueryStats{
			SQLHandle:            cursor.Field[[]byte](r, QueryStatsSQLHandle),
			StatementStartOffset: cursor.Field[int32](r, QueryStatsStatementStartOffset),
			StatementEndOffset:   cursor.Field[int32](r, QueryStatsStatementEndOffset),
			PlanGenerationNum:    cursor.NullableField[int64](r, QueryStatsPlanGenerationNum),
			PlanHandle:           cursor.Field[[]byte](r, QueryStatsPlanHandle),
			CreationTime:         cursor.NullableField[time.Time](r, QueryStatsCreationTime),
			LastExecutionTime:    cursor.NullableField[time.Time](r, QueryStatsLastExecutionTime),
			ExecutionCount:       cursor.Field[int64](r, QueryStatsExecutionCount),
			TotalWorkerTime:      cursor.Field[int64](r, QueryStatsTotalWorkerTime),
			TotalElapsedTime:     cursor.Field[int64](r, QueryStatsTotalElapsedTime),
			TotalLogicalReads:    cursor.Field[int64](r, QueryStatsTotalLogicalReads),
			TotalRows:            cursor.NullableField[int64](r, QueryStatsTotalRows),
			QueryHash:            cursor.NullableField[[]byte](r, QueryStatsQueryHash).V,
			QueryPlanHash:        cursor.NullableField[[]byte](r, QueryStatsQueryPlanHash).V,
		}, r.Err()
	})
