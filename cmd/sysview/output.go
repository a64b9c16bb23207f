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
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"

	"github.com/matrixorigin/sysview/pkg/sysview"
)

const (
	formatTable  = "table"
	formatJSON   = "json"
	formatRecord = "record"
)

var formats = map[string]func(io.Writer, sysview.Dumper) printer{
	formatTable:  newTablePrinter,
	formatJSON:   newJSONPrinter,
	formatRecord: newRecordPrinter,
}

type printer interface {
	add(rec sysview.Record) error
	flush() error
}

type tablePrinter struct {
	w     io.Writer
	view  string
	table *tablewriter.Table
}

func newTablePrinter(w io.Writer, d sysview.Dumper) printer {
	table := tablewriter.NewWriter(w)
	table.SetHeader(d.Columns())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return &tablePrinter{w: w, view: d.ViewName(), table: table}
}

func (p *tablePrinter) add(rec sysview.Record) error {
	row := make([]string, len(rec.Values))
	for i := range rec.Values {
		row[i] = rec.Text(i)
	}
	p.table.Append(row)
	return nil
}

func (p *tablePrinter) flush() error {
	if _, err := fmt.Fprintf(p.w, "%s\n", p.view); err != nil {
		return err
	}
	p.table.Render()
	return nil
}

// jsonLine is one row in json output, one object per line. SQL NULL is
// a json null.
type jsonLine struct {
	View   string             `json:"view"`
	Values map[string]*string `json:"values"`
}

type jsonPrinter struct {
	enc     *jsoniter.Encoder
	view    string
	columns []string
}

func newJSONPrinter(w io.Writer, d sysview.Dumper) printer {
	return &jsonPrinter{
		enc:     jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w),
		view:    d.ViewName(),
		columns: d.Columns(),
	}
}

func (p *jsonPrinter) add(rec sysview.Record) error {
	line := jsonLine{View: p.view, Values: make(map[string]*string, len(p.columns))}
	for i, name := range p.columns {
		if rec.Values[i].IsNull() {
			line.Values[name] = nil
			continue
		}
		text := rec.Text(i)
		line.Values[name] = &text
	}
	return p.enc.Encode(line)
}

func (p *jsonPrinter) flush() error {
	return nil
}

type recordPrinter struct {
	w    io.Writer
	view string
}

func newRecordPrinter(w io.Writer, d sysview.Dumper) printer {
	return &recordPrinter{w: w, view: d.ViewName()}
}

func (p *recordPrinter) add(rec sysview.Record) error {
	_, err := fmt.Fprintf(p.w, "%s\t%+v\n", p.view, rec.Row)
	return err
}

func (p *recordPrinter) flush() error {
	return nil
}
