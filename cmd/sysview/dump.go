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
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/cursor"
	"github.com/matrixorigin/sysview/pkg/logutil"
	"github.com/matrixorigin/sysview/pkg/sysview"
)

type dumpOptions struct {
	all    bool
	params []string
}

func newDumpCommand(opts *options) *cobra.Command {
	d := &dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump [view...]",
		Short: "Print the rows of views",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, opts, d, args)
		},
	}
	cmd.Flags().BoolVar(&d.all, "all", false, "dump every view of the catalog that takes the given parameters")
	cmd.Flags().StringArrayVar(&d.params, "param", nil, "parameter passed to the view query, repeatable")
	return cmd
}

func runDump(cmd *cobra.Command, opts *options, d *dumpOptions, names []string) error {
	r, err := registryFor(opts.cfg.Dialect())
	if err != nil {
		return err
	}
	args := make([]any, len(d.params))
	for i, p := range d.params {
		args[i] = p
	}
	dumpers, err := selectViews(r, names, d.all, len(args))
	if err != nil {
		return err
	}

	db, err := openDB(opts.cfg.Source.Driver, opts.cfg.Source.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	pool, err := ants.NewPool(opts.cfg.Reader.Parallel)
	if err != nil {
		return err
	}
	defer pool.Release()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	validation := cursor.WithValidation(opts.cfg.ValidationMode())
	outputs := make([]bytes.Buffer, len(dumpers))
	errs := make([]error, len(dumpers))
	var wg sync.WaitGroup
	for i := range dumpers {
		i := i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			errs[i] = dumpView(ctx, db, dumpers[i], args, formats[opts.format](&outputs[i], dumpers[i]), validation)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	w := cmd.OutOrStdout()
	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

// selectViews resolves names, or every view taking nparams parameters
// when all is set.
func selectViews(r *sysview.Registry, names []string, all bool, nparams int) ([]sysview.Dumper, error) {
	if all {
		if len(names) > 0 {
			return nil, moerr.NewInvalidInput("--all does not take view names")
		}
		names = r.Names()
	} else if len(names) == 0 {
		return nil, moerr.NewInvalidInput("no view to dump, name one or use --all")
	}

	dumpers := make([]sysview.Dumper, 0, len(names))
	for _, name := range names {
		d, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		if all && d.ParamCount() != nparams {
			logutil.Info("skip view",
				zap.String("view", d.ViewName()),
				zap.Int("params", d.ParamCount()))
			continue
		}
		dumpers = append(dumpers, d)
	}
	return dumpers, nil
}

func dumpView(ctx context.Context, q sysview.Querier, d sysview.Dumper, args []any, p printer, opts ...cursor.Option) error {
	start := time.Now()
	err := d.Dump(ctx, q, args, p.add, opts...)
	err = multierr.Append(err, p.flush())
	if err != nil {
		logutil.Error("dump failed", zap.String("view", d.ViewName()), zap.Error(err))
		return err
	}
	logutil.Debug("dump done", zap.String("view", d.ViewName()), logutil.Elapsed(start))
	return nil
}
