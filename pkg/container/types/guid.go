// Copyright 2021 - 2024 Matrix Origin
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
	"fmt"

	"github.com/google/uuid"
)

// Guid is a 16 byte globally unique identifier.
type Guid = uuid.UUID

// ToGuid converts a raw driver value. Binary input of 16 bytes is taken as
// is, unless mixedEndian is set: SQL Server sends uniqueidentifier with the
// first three groups little endian.
func ToGuid(raw any, mixedEndian bool) (Guid, error) {
	switch v := raw.(type) {
	case []byte:
		if len(v) == 16 {
			return guidFromBytes(v, mixedEndian)
		}
		return uuid.ParseBytes(v)
	case string:
		return uuid.Parse(v)
	case [16]byte:
		return guidFromBytes(v[:], mixedEndian)
	case Guid:
		return v, nil
	default:
		return Guid{}, unsupported(raw)
	}
}

func guidFromBytes(b []byte, mixedEndian bool) (Guid, error) {
	if len(b) != 16 {
		return Guid{}, fmt.Errorf("invalid guid length %d", len(b))
	}
	var g Guid
	copy(g[:], b)
	if mixedEndian {
		g[0], g[1], g[2], g[3] = g[3], g[2], g[1], g[0]
		g[4], g[5] = g[5], g[4]
		g[6], g[7] = g[7], g[6]
	}
	return g, nil
}
