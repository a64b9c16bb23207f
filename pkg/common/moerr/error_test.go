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

package moerr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestIsMoErrCode(t *testing.T) {
	require.True(t, IsMoErrCode(nil, Ok))
	require.False(t, IsMoErrCode(fmt.Errorf("plain"), ErrInternal))

	err := NewNullNotAllowed("sys.columns", 3, "name", "string")
	require.True(t, IsMoErrCode(err, ErrNullNotAllowed))
	require.False(t, IsMoErrCode(err, ErrTypeMismatch))
	require.Equal(t, "sys.columns: column 3 (name) is NULL but was read as non-nullable string", err.Error())

	wrapped := fmt.Errorf("read row: %w", err)
	require.True(t, IsMoErrCode(wrapped, ErrNullNotAllowed))
	require.Same(t, err, DowncastError(wrapped))
}

func TestIsMoErrCodeCombined(t *testing.T) {
	err := multierr.Append(NewOrdinalOutOfRange("v", 9, 2), fmt.Errorf("close failed"))
	require.True(t, IsMoErrCode(err, ErrOrdinalOutOfRange))
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code uint16
		msg  string
	}{
		{
			name: "type mismatch",
			err:  NewTypeMismatch("v", 1, "id", "int32", "column kind is %s", "String"),
			code: ErrTypeMismatch,
			msg:  "v: column 1 (id) can not be read as int32: column kind is String",
		},
		{
			name: "cursor state",
			err:  NewInvalidCursorState("v", "no current row"),
			code: ErrInvalidCursorState,
			msg:  "v: invalid cursor state: no current row",
		},
		{
			name: "ordinal",
			err:  NewOrdinalOutOfRange("v", 5, 2),
			code: ErrOrdinalOutOfRange,
			msg:  "v: ordinal 5 out of range, row has 2 columns",
		},
		{
			name: "schema",
			err:  NewSchemaMismatch("v", "expected %d columns, got %d", 2, 3),
			code: ErrSchemaMismatch,
			msg:  "v: declared columns do not match the result set: expected 2 columns, got 3",
		},
		{
			name: "config",
			err:  NewBadConfig("unknown driver %q", "x"),
			code: ErrBadConfig,
			msg:  `invalid configuration: unknown driver "x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.code, tt.err.ErrorCode())
			require.Equal(t, tt.msg, tt.err.Error())
			require.Equal(t, CodeName(tt.code), tt.err.CodeName())
		})
	}
}

func TestDetail(t *testing.T) {
	err := NewInvalidInput("bad").WithDetail("more")
	require.Equal(t, "more", err.Detail())
	require.Equal(t, "invalid input: bad, detail: more", err.Display())
	require.Equal(t, "Unknown", CodeName(12345))
	// codes without a constructor are not in the table
	require.Equal(t, "Unknown", CodeName(20102))
	require.Equal(t, "Unknown", CodeName(20400))
}

func TestNewErrorPanicsOnUnknownCode(t *testing.T) {
	require.Panics(t, func() { _ = newError(12345) })
}
