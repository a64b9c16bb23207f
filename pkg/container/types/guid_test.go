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

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToGuid(t *testing.T) {
	const text = "6f9619ff-8b86-d011-b42d-00c04fc964ff"

	g, err := ToGuid(text, false)
	require.NoError(t, err)
	require.Equal(t, text, g.String())

	g, err = ToGuid([]byte(text), false)
	require.NoError(t, err)
	require.Equal(t, text, g.String())

	// the same value as SQL Server puts it on the wire
	wire := []byte{0xff, 0x19, 0x96, 0x6f, 0x86, 0x8b, 0x11, 0xd0, 0xb4, 0x2d, 0x00, 0xc0, 0x4f, 0xc9, 0x64, 0xff}
	g, err = ToGuid(wire, true)
	require.NoError(t, err)
	require.Equal(t, text, g.String())

	g, err = ToGuid(wire, false)
	require.NoError(t, err)
	require.Equal(t, "ff19966f-868b-11d0-b42d-00c04fc964ff", g.String())

	_, err = ToGuid([]byte{1, 2, 3}, false)
	require.Error(t, err)
	_, err = ToGuid(int64(1), false)
	require.Error(t, err)
}

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01 10:20:30", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"2024-03-01 10:20:30.123456", time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-01T10:20:30+02:00", time.Date(2024, 3, 1, 8, 20, 30, 0, time.UTC)},
		{"0000-00-00 00:00:00", time.Time{}},
	}
	for _, tt := range tests {
		got, err := ParseDatetime(tt.in)
		require.NoError(t, err, tt.in)
		require.True(t, tt.want.Equal(got), "%s: %v", tt.in, got)
	}

	_, err := ParseDatetime("yesterday")
	require.Error(t, err)

	now := time.Now()
	got, err := ToDatetime(now)
	require.NoError(t, err)
	require.Equal(t, now, got)
}

func TestVariant(t *testing.T) {
	require.True(t, NewVariant(nil).IsNull())
	require.Equal(t, "NULL", NewVariant(nil).String())
	require.Equal(t, "42", NewVariant(int64(42)).String())
	require.Equal(t, "MS_Description", NewVariant("MS_Description").String())

	raw := []byte{0x0a, 0xff}
	v := NewVariant(raw)
	raw[0] = 0
	require.Equal(t, "0x0AFF", v.String())
	require.False(t, v.IsNull())

	require.Equal(t, "0x0AFF", v.Format(KindBytes))
	require.Equal(t, "0x0AFF", v.Format(KindUnknown))
	require.Equal(t, "12.50", NewVariant([]byte("12.50")).Format(KindDecimal))
	require.Equal(t, "NULL", NewVariant(nil).Format(KindString))
	require.Equal(t, "7", NewVariant(int64(7)).Format(KindInt32))

	text, err := NewVariant(1.5).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1.5", string(text))
}
