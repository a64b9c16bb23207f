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

package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
	"github.com/matrixorigin/sysview/pkg/logutil"
)

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultValidation = "open"
	defaultParallel   = 4
	defaultTextfile   = "./sysview.prom"
)

// Config is the toml configuration of the sysview tool.
type Config struct {
	Log    logutil.LogConfig `toml:"log"`
	Source SourceConfig      `toml:"source"`
	Reader ReaderConfig      `toml:"reader"`
	Metric MetricConfig      `toml:"metric"`
}

// SourceConfig names the database to read.
type SourceConfig struct {
	// Driver is the database/sql driver name, "mysql" or "sqlserver".
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
	// Catalog selects the view set, "mysql" or "mssql". It follows the
	// driver when left empty.
	Catalog string `toml:"catalog"`
}

type ReaderConfig struct {
	// Validation is when view schemas are checked against the result:
	// "open", "first-row" or "off".
	Validation string `toml:"validation"`
	// Parallel is the number of views dumped at once.
	Parallel int `toml:"parallel"`
}

type MetricConfig struct {
	Enable bool `toml:"enable"`
	// Textfile receives the metrics in prometheus text format after a
	// run, for the node exporter textfile collector.
	Textfile string `toml:"textfile"`
}

// ParseFile decodes the toml file at path, fills in defaults and
// validates the result.
func ParseFile(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, moerr.NewBadConfig("%s: %v", path, err)
	}
	cfg.SetDefaultValues()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaultValues fills every unset field.
func (c *Config) SetDefaultValues() {
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}

	if d := types.DialectOf(c.Source.Driver); c.Source.Catalog == "" && d != types.DialectGeneric {
		c.Source.Catalog = d.String()
	}
	if c.Source.Driver == "" {
		switch types.DialectOf(c.Source.Catalog) {
		case types.DialectMSSQL:
			c.Source.Driver = "sqlserver"
		case types.DialectMySQL:
			c.Source.Driver = "mysql"
		}
	}

	if c.Reader.Validation == "" {
		c.Reader.Validation = defaultValidation
	}
	if c.Reader.Parallel == 0 {
		c.Reader.Parallel = defaultParallel
	}

	if c.Metric.Textfile == "" {
		c.Metric.Textfile = defaultTextfile
	}
}

// Validate reports the first invalid setting as ErrBadConfig.
func (c *Config) Validate() error {
	if c.Source.DSN == "" {
		return moerr.NewBadConfig("source.dsn is required")
	}
	driver := types.DialectOf(c.Source.Driver)
	if driver == types.DialectGeneric {
		return moerr.NewBadConfig("unsupported source.driver %q", c.Source.Driver)
	}
	if catalog := types.DialectOf(c.Source.Catalog); catalog != driver {
		return moerr.NewBadConfig("source.catalog %q does not match source.driver %q",
			c.Source.Catalog, c.Source.Driver)
	}
	if _, err := parseValidation(c.Reader.Validation); err != nil {
		return err
	}
	if c.Reader.Parallel < 1 {
		return moerr.NewBadConfig("reader.parallel must be positive, got %d", c.Reader.Parallel)
	}
	return nil
}

// Dialect is the catalog dialect of the source.
func (c *Config) Dialect() types.Dialect {
	return types.DialectOf(c.Source.Catalog)
}

// ValidationMode is the cursor validation mode of reader.validation.
func (c *Config) ValidationMode() cursor.ValidationMode {
	mode, _ := parseValidation(c.Reader.Validation)
	return mode
}

func parseValidation(s string) (cursor.ValidationMode, error) {
	switch strings.ToLower(s) {
	case "", "open":
		return cursor.ValidateOnOpen, nil
	case "first-row":
		return cursor.ValidateOnFirstRow, nil
	case "off":
		return cursor.ValidateOff, nil
	default:
		return cursor.ValidateOnOpen, moerr.NewBadConfig("unsupported reader.validation %q", s)
	}
}
