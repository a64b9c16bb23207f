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

package sysview

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/exp/slices"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
	v2 "github.com/matrixorigin/sysview/pkg/util/metric/v2"
)

// Record is one row of a dump: the typed record built by the view and the
// raw column values in ordinal order.
type Record struct {
	Row    any
	Values []types.Variant
	// Kinds are the declared kinds of Values.
	Kinds []types.Kind
}

// Text renders column i for display.
func (r Record) Text(i int) string {
	return r.Values[i].Format(r.Kinds[i])
}

// Dumper is a view with its record type erased, for tools that handle
// views generically.
type Dumper interface {
	ViewName() string
	Columns() []string
	ViewSchema() cursor.Schema
	ParamCount() int
	Dump(ctx context.Context, q Querier, args []any, each func(Record) error, opts ...cursor.Option) error
}

func (v *View[R]) ViewName() string {
	return v.Name
}

func (v *View[R]) Columns() []string {
	return v.Schema.Names()
}

func (v *View[R]) ViewSchema() cursor.Schema {
	return v.Schema
}

func (v *View[R]) ParamCount() int {
	return v.Params
}

// Dump reads the view and hands every row to each. Every row is built
// through Row, so a dump fails exactly where a typed read would. opts
// apply on top of the view's own cursor options.
func (v *View[R]) Dump(ctx context.Context, q Querier, args []any, each func(Record) error, opts ...cursor.Option) (err error) {
	c, err := v.WithOptions(opts...).Open(ctx, q, args...)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, c.Close())
	}()

	kinds := make([]types.Kind, v.Schema.Len())
	for i := range kinds {
		kinds[i] = v.Schema.Column(i).Kind
	}
	rows := 0
	err = cursor.ForEach(c, v.Row, func(r R) error {
		rec := Record{Row: r, Values: make([]types.Variant, len(kinds)), Kinds: kinds}
		for i := range rec.Values {
			val, err := c.Variant(i)
			if err != nil {
				return err
			}
			rec.Values[i] = val
		}
		rows++
		return each(rec)
	})
	v2.ViewRowsCounter.WithLabelValues(v.Name).Add(float64(rows))
	return err
}

// Registry maps view names to dumpers. Names are case insensitive.
type Registry struct {
	mu    sync.RWMutex
	views map[string]Dumper
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]Dumper)}
}

func (r *Registry) Register(d Dumper) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(d.ViewName())
	if _, ok := r.views[key]; ok {
		return moerr.NewInvalidInput("view %s registered twice", d.ViewName())
	}
	r.views[key] = d
	return nil
}

func (r *Registry) MustRegister(ds ...Dumper) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Get(name string) (Dumper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.views[strings.ToLower(name)]
	if !ok {
		return nil, moerr.NewInvalidInput("unknown view %s", name)
	}
	return d, nil
}

// Names returns the registered view names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.views))
	for _, d := range r.views {
		names = append(names, d.ViewName())
	}
	slices.Sort(names)
	return names
}
