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
	FilesFileID = iota
	FilesFileGuid
	FilesType
	FilesTypeDesc
	FilesDataSpaceID
	FilesName
	FilesPhysicalName
	FilesStateDesc
	FilesSize
	FilesMaxSize
	FilesGrowth
	FilesIsReadOnly
	FilesCreateLsn
	FilesDropLsn
	FilesReadOnlyLsn
	FilesBackupLsn
	FilesDifferentialBaseLsn
	FilesDifferentialBaseGuid
)

// DatabaseFile is one row of sys.database_files. Sizes are in 8 KB pages.
type DatabaseFile struct {
	FileID               int32
	FileGuid             sql.Null[types.Guid]
	Type                 uint8
	TypeDesc             sql.Null[string]
	DataSpaceID          int32
	Name                 string
	PhysicalName         string
	StateDesc            sql.Null[string]
	Size                 int32
	MaxSize              int32
	Growth               int32
	IsReadOnly           bool
	CreateLsn            sql.Null[types.Decimal]
	DropLsn              sql.Null[types.Decimal]
	ReadOnlyLsn          sql.Null[types.Decimal]
	BackupLsn            sql.Null[types.Decimal]
	DifferentialBaseLsn  sql.Null[types.Decimal]
	DifferentialBaseGuid sql.Null[types.Guid]
}

var DatabaseFiles = newView("sys.database_files", `SELECT
	file_id, file_guid, type, type_desc, data_space_id, name, physical_name,
	state_desc, size, max_size, growth, is_read_only, create_lsn, drop_lsn,
	read_only_lsn, backup_lsn, differential_base_lsn, differential_base_guid
FROM sys.database_files`, 0,
	cursor.MustSchema(
		cursor.Col("file_id", types.KindInt32),
		cursor.NullableCol("file_guid", types.KindGuid),
		cursor.Col("type", types.KindUint8),
		cursor.NullableCol("type_desc", types.KindString),
		cursor.Col("data_space_id", types.KindInt32),
		cursor.Col("name", types.KindString),
		cursor.Col("physical_name", types.KindString),
		cursor.NullableCol("state_desc", types.KindString),
		cursor.Col("size", types.KindInt32),
		cursor.Col("max_size", types.KindInt32),
		cursor.Col("growth", types.KindInt32),
		cursor.Col("is_read_only", types.KindBool),
		cursor.NullableCol("create_lsn", types.KindDecimal),
		cursor.NullableCol("drop_lsn", types.KindDecimal),
		cursor.NullableCol("read_only_lsn", types.KindDecimal),
		cursor.NullableCol("backup_lsn", types.KindDecimal),
		cursor.NullableCol("differential_base_lsn", types.KindDecimal),
		cursor.NullableCol("differential_base_guid", types.KindGuid),
	),
	func(c *cursor.Cursor) (DatabaseFile, error) {
		r := cursor.NewRowReader(c)
		return DatabaseFile{
			FileID:               cursor.Field[int32](r, FilesFileID),
			FileGuid:             cursor.NullableField[types.Guid](r, FilesFileGuid),
			Type:                 cursor.Field[uint8](r, FilesType),
			TypeDesc:             cursor.NullableField[string](r, FilesTypeDesc),
			DataSpaceID:          cursor.Field[int32](r, FilesDataSpaceID),
			Name:                 cursor.Field[string](r, FilesName),
			PhysicalName:         cursor.Field[string](r, FilesPhysicalName),
			StateDesc:            cursor.NullableField[string](r, FilesStateDesc),
			Size:                 cursor.Field[int32](r, FilesSize),
			MaxSize:              cursor.Field[int32](r, FilesMaxSize),
			Growth:               cursor.Field[int32](r, FilesGrowth),
			IsReadOnly:           cursor.Field[bool](r, FilesIsReadOnly),
			CreateLsn:            cursor.NullableField[types.Decimal](r, FilesCreateLsn),
			DropLsn:              cursor.NullableField[types.Decimal](r, FilesDropLsn),
			ReadOnlyLsn:          cursor.NullableField[types.Decimal](r, FilesReadOnlyLsn),
			BackupLsn:            cursor.NullableField[types.Decimal](r, FilesBackupLsn),
			DifferentialBaseLsn:  cursor.NullableField[types.Decimal](r, FilesDifferentialBaseLsn),
			DifferentialBaseGuid: cursor.NullableField[types.Guid](r, FilesDifferentialBaseGuid),
		}, r.Err()
	})
