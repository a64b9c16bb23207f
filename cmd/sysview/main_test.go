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

package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	jsoniter "github.com/json-iterator/go"
	"github.com/lni/goutils/leaktest"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/sysview/mysql"
)

func writeConfig(t *testing.T, extra string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "sysview.toml")
	content := fmt.Sprintf(`
[source]
driver = "mysql"
dsn = "root:111@tcp(127.0.0.1:6001)/"

[reader]
parallel = 2

[metric]
textfile = %q
%s
`, filepath.Join(dir, "sysview.prom"), extra)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func stubDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gostub.Stubs) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	stubs := gostub.Stub(&openDB, func(driver, dsn string) (*sql.DB, error) {
		require.Equal(t, "mysql", driver)
		return db, nil
	})
	return db, mock, stubs
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func b(s string) []byte {
	return []byte(s)
}

func TestList(t *testing.T) {
	out, err := run(t, "--cfg", writeConfig(t, ""), "list")
	require.NoError(t, err)
	require.Contains(t, out, "information_schema.tables")
	require.Contains(t, out, "information_schema.processlist")
	require.NotContains(t, out, "sys.databases")
}

func TestDumpJSON(t *testing.T) {
	db, mock, stubs := stubDB(t)
	defer stubs.Reset()
	defer db.Close()

	mock.ExpectQuery(mysql.Processlist.Query).WillReturnRows(
		mock.NewRows(mysql.Processlist.Schema.Names()).
			AddRow(b("5"), b("root"), b("localhost:5012"), nil, b("Query"), b("0"), b("executing"), b("NULL")))

	out, err := run(t, "--cfg", writeConfig(t, ""), "--format", "json", "dump", "information_schema.processlist")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"view":"information_schema.processlist"`)
	require.Contains(t, lines[0], `"db":null`)
	require.Contains(t, lines[0], `"info":"NULL"`)
	require.Contains(t, lines[0], `"id":"5"`)
	require.Contains(t, lines[0], `"user":"root"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDumpRecord(t *testing.T) {
	db, mock, stubs := stubDB(t)
	defer stubs.Reset()
	defer db.Close()

	mock.ExpectQuery(mysql.Tables.Query).WithArgs("db1").WillReturnRows(
		mock.NewRows(mysql.Tables.Schema.Names()).
			AddRow(b("db1"), b("t1"), b("BASE TABLE"), b("Tae"), b("3"), nil, nil, nil, nil, nil, nil, nil))

	out, err := run(t, "--cfg", writeConfig(t, ""), "--format", "record",
		"dump", "information_schema.tables", "--param", "db1")
	require.NoError(t, err)
	require.Contains(t, out, "information_schema.tables\t{TableSchema:db1 TableName:t1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDumpAll(t *testing.T) {
	defer leaktest.AfterTest(t)()
	db, mock, stubs := stubDB(t)
	defer stubs.Reset()
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(mysql.Tables.Query).WithArgs("db1").WillReturnRows(
		mock.NewRows(mysql.Tables.Schema.Names()).
			AddRow(b("db1"), b("t1"), b("BASE TABLE"), b("Tae"), b("3"), nil, nil, nil, nil, nil, nil, nil))
	mock.ExpectQuery(mysql.Columns.Query).WithArgs("db1").WillReturnRows(
		mock.NewRows(mysql.Columns.Schema.Names()).
			AddRow(b("db1"), b("t1"), b("id"), b("1"), nil, b("NO"), b("int"), nil, b("32"), b("0"),
				b("int"), b("PRI"), b(""), b("")))

	cfg := writeConfig(t, "enable = true")
	out, err := run(t, "--cfg", cfg, "dump", "--all", "--param", "db1")
	require.NoError(t, err)
	// output follows registry order whatever order the views finished in
	columns := strings.Index(out, "information_schema.columns")
	tables := strings.Index(out, "information_schema.tables")
	require.True(t, columns >= 0 && tables > columns)
	require.NotContains(t, out, "information_schema.processlist")
	require.Contains(t, out, "BASE TABLE")
	require.Contains(t, out, "PRI")
	require.NoError(t, mock.ExpectationsWereMet())

	prom, err := os.ReadFile(filepath.Join(filepath.Dir(cfg), "sysview.prom"))
	require.NoError(t, err)
	require.Contains(t, string(prom), `mo_sysview_rows_total{view="information_schema.tables"}`)
}

func TestDumpKeepsLogsOffStdout(t *testing.T) {
	db, mock, stubs := stubDB(t)
	defer stubs.Reset()
	defer db.Close()

	mock.ExpectQuery(mysql.Processlist.Query).WillReturnRows(
		mock.NewRows(mysql.Processlist.Schema.Names()).
			AddRow(b("5"), b("root"), b("localhost"), nil, b("Sleep"), b("3"), nil, nil).
			AddRow(b("6"), b("dump"), b("localhost"), b("db1"), b("Query"), b("0"), nil, b("select 1")))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	root := newRootCommand()
	root.SetArgs([]string{"--cfg", writeConfig(t, ""), "--format", "json", "dump", "--all"})
	err = root.Execute()
	os.Stdout = stdout
	require.NoError(t, w.Close())
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var v jsonLine
		require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(line, &v), line)
		require.Equal(t, "information_schema.processlist", v.View)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDumpErrors(t *testing.T) {
	cfg := writeConfig(t, "")

	_, err := run(t, "--cfg", cfg, "dump")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	_, err = run(t, "--cfg", cfg, "dump", "--all", "information_schema.tables")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	_, err = run(t, "--cfg", cfg, "dump", "sys.databases")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	_, err = run(t, "--cfg", cfg, "--format", "xml", "list")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	_, err = run(t, "--cfg", filepath.Join(t.TempDir(), "missing.toml"), "list")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadConfig))
}

func TestDumpFault(t *testing.T) {
	db, mock, stubs := stubDB(t)
	defer stubs.Reset()
	defer db.Close()

	mock.ExpectQuery(mysql.Processlist.Query).WillReturnRows(
		mock.NewRows(mysql.Processlist.Schema.Names()).
			AddRow(nil, b("root"), b("localhost"), nil, b("Query"), b("0"), nil, nil))

	_, err := run(t, "--cfg", writeConfig(t, ""), "dump", "information_schema.processlist")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNullNotAllowed))
}
