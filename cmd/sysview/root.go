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
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/config"
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/logutil"
	"github.com/matrixorigin/sysview/pkg/sysview"
	"github.com/matrixorigin/sysview/pkg/sysview/mssql"
	"github.com/matrixorigin/sysview/pkg/sysview/mysql"
	v2 "github.com/matrixorigin/sysview/pkg/util/metric/v2"
)

// openDB is a variable so tests can hand out a mock database.
var openDB = func(driver, dsn string) (*sql.DB, error) {
	return sql.Open(driver, dsn)
}

type options struct {
	configFile string
	format     string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "sysview",
		Short: "Read system catalog and management views",
		Long: `sysview reads the system catalog and dynamic management views of a
SQL Server or MySQL protocol database (MatrixOne included) into typed
records and prints them.

Examples:
  sysview --cfg ./sysview.toml list
  sysview --cfg ./sysview.toml dump sys.databases
  sysview --cfg ./sysview.toml dump information_schema.tables --param mo_catalog
  sysview --cfg ./sysview.toml dump --all --format json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseFile(opts.configFile)
			if err != nil {
				return err
			}
			if _, ok := formats[opts.format]; !ok {
				return moerr.NewInvalidInput("unsupported format %q", opts.format)
			}
			logutil.SetupMOLogger(&cfg.Log)
			opts.cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return writeMetrics(opts.cfg)
		},
	}
	root.PersistentFlags().StringVar(&opts.configFile, "cfg", "./sysview.toml", "toml configuration of the source database")
	root.PersistentFlags().StringVar(&opts.format, "format", formatTable, "output format: table, json or record")

	root.AddCommand(newListCommand(opts), newDumpCommand(opts))
	return root
}

// registryFor returns the views readable on a dialect.
func registryFor(d types.Dialect) (*sysview.Registry, error) {
	r := sysview.NewRegistry()
	switch d {
	case types.DialectMSSQL:
		mssql.Register(r)
	case types.DialectMySQL:
		mysql.Register(r)
	default:
		return nil, moerr.NewInvalidInput("no views for dialect %s", d)
	}
	return r, nil
}

func writeMetrics(cfg *config.Config) error {
	if cfg == nil || !cfg.Metric.Enable {
		return nil
	}
	if err := prometheus.WriteToTextfile(cfg.Metric.Textfile, v2.GetPrometheusGatherer()); err != nil {
		return err
	}
	logutil.Debug("metrics written", zap.String("file", cfg.Metric.Textfile))
	return nil
}
