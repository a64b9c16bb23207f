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

package cursor_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sysview/pkg/common/moerr"
	"github.com/matrixorigin/sysview/pkg/container/types"
	"github.com/matrixorigin/sysview/pkg/cursor"
	mock_cursor "github.com/matrixorigin/sysview/pkg/cursor/test"
)

var oneInt = []cursor.ColumnMeta{{Name: "id", DatabaseTypeName: "INT", Kind: types.KindInt32}}

func scanInt(v int64) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*any) = v
		return nil
	}
}

func TestOwnedCursorClosesSourceOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mock_cursor.NewMockRowSource(ctrl)
	src.EXPECT().Shape().Return(oneInt, nil)
	src.EXPECT().Next().Return(true)
	src.EXPECT().Scan(gomock.Any()).DoAndReturn(scanInt(5))
	src.EXPECT().Next().Return(false)
	src.EXPECT().Err().Return(nil)
	src.EXPECT().Close().Return(nil).Times(1)

	c, err := cursor.New(src)
	require.NoError(t, err)
	require.True(t, c.Advance())
	v, err := cursor.Get[int32](c, 0)
	require.NoError(t, err)
	require.Equal(t, int32(5), v)
	require.False(t, c.Advance())
	// exhaustion does not touch the source again
	require.False(t, c.Advance())

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestBorrowedCursorNeverClosesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mock_cursor.NewMockRowSource(ctrl)
	src.EXPECT().Shape().Return(oneInt, nil)
	src.EXPECT().Next().Return(false)
	src.EXPECT().Err().Return(nil)
	src.EXPECT().Close().Times(0)

	c, err := cursor.New(src, cursor.WithBorrowed())
	require.NoError(t, err)
	rs, err := cursor.MaterializeAll(c, func(c *cursor.Cursor) (int32, error) {
		return cursor.Get[int32](c, 0)
	})
	require.NoError(t, err)
	require.Empty(t, rs)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestCloseErrorIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	closeErr := errors.New("close failed")
	src := mock_cursor.NewMockRowSource(ctrl)
	src.EXPECT().Shape().Return(oneInt, nil)
	src.EXPECT().Close().Return(closeErr).Times(1)

	c, err := cursor.New(src)
	require.NoError(t, err)
	require.ErrorIs(t, c.Close(), closeErr)
	require.NoError(t, c.Close())
}

func TestFailedNewClosesOwnedSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema := cursor.MustSchema(cursor.Column{Name: "name", Kind: types.KindString})

	owned := mock_cursor.NewMockRowSource(ctrl)
	owned.EXPECT().Shape().Return(oneInt, nil)
	owned.EXPECT().Close().Return(nil).Times(1)
	_, err := cursor.New(owned, cursor.WithSchema(schema))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSchemaMismatch))

	borrowed := mock_cursor.NewMockRowSource(ctrl)
	borrowed.EXPECT().Shape().Return(oneInt, nil)
	borrowed.EXPECT().Close().Times(0)
	_, err = cursor.New(borrowed, cursor.WithSchema(schema), cursor.WithBorrowed())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSchemaMismatch))

	shapeErr := errors.New("no metadata")
	broken := mock_cursor.NewMockRowSource(ctrl)
	broken.EXPECT().Shape().Return(nil, shapeErr)
	broken.EXPECT().Close().Return(nil).Times(1)
	_, err = cursor.New(broken)
	require.ErrorIs(t, err, shapeErr)
}

func TestMixedEndianGuid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wire := []byte{
		0xff, 0x19, 0x96, 0x6f, 0x86, 0x8b, 0x11, 0xd0,
		0xb4, 0x2d, 0x00, 0xc0, 0x4f, 0xc9, 0x64, 0xff,
	}
	src := mock_cursor.NewMockRowSource(ctrl)
	src.EXPECT().Shape().Return([]cursor.ColumnMeta{{Name: "guid", Kind: types.KindGuid}}, nil)
	src.EXPECT().Next().Return(true)
	src.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		*dest[0].(*any) = wire
		return nil
	})
	src.EXPECT().Close().Return(nil)

	c, err := cursor.New(src, cursor.WithMixedEndianGuid())
	require.NoError(t, err)
	defer c.Close()
	require.True(t, c.Advance())
	g, err := cursor.Get[types.Guid](c, 0)
	require.NoError(t, err)
	require.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", g.String())
}
