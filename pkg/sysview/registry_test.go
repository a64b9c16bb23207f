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
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(objects))
	other := *objects
	other.Name = "test.others"
	r.MustRegister(&other)

	err := r.Register(objects.WithOptions())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
	require.Panics(t, func() { r.MustRegister(objects) })

	require.Equal(t, []string{"test.objects", "test.others"}, r.Names())
	d, err := r.Get("TEST.OBJECTS")
	require.NoError(t, err)
	require.Equal(t, "test.objects", d.ViewName())
	require.Equal(t, []string{"id", "name"}, d.Columns())
	require.Equal(t, 1, d.ParamCount())

	_, err = r.Get("missing")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestRegistry_concurrent(t *testing.T) {
	_, ok := reflect.TypeOf(&Registry{}).MethodByName("Lock")
	require.False(t, ok)

	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := *objects
			v.Name = fmt.Sprintf("test.objects%d", i)
			require.NoError(t, r.Register(&v))
			_, err := r.Get(v.Name)
			require.NoError(t, err)
			_ = r.Names()
		}(i)
	}
	wg.Wait()
	require.Len(t, r.Names(), 8)
}

func TestView_Dump(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(objects.Query).WithArgs(1).WillReturnRows(objectRows(mock))

	var d Dumper = objects
	var recs []Record
	err := d.Dump(context.Background(), db, []any{1}, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, object{ID: 1}.ID, recs[0].Row.(object).ID)
	require.Equal(t, "1", recs[0].Values[0].String())
	require.Equal(t, "a", recs[0].Values[1].String())
	require.True(t, recs[1].Values[1].IsNull())
	require.Equal(t, "NULL", recs[1].Values[1].String())
	require.Equal(t, "a", recs[0].Text(1))
	require.Equal(t, "1", recs[0].Text(0))
}
