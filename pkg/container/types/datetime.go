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
	"strings"
	"time"
)

// text protocol layouts, tried in order
var datetimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02",
	"15:04:05.999999999",
}

const zeroDatetimePrefix = "0000-00-00"

// ParseDatetime parses the textual datetime forms returned by drivers that
// do not decode temporal columns themselves. Values are taken as UTC
// unless they carry an offset. The MySQL zero date maps to time.Time{}.
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, zeroDatetimePrefix) {
		return time.Time{}, nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("incorrect datetime value %q", s)
}

// ToDatetime converts a raw driver value.
func ToDatetime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case []byte:
		return ParseDatetime(string(v))
	case string:
		return ParseDatetime(v)
	default:
		return time.Time{}, unsupported(raw)
	}
}
