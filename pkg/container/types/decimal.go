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

	"github.com/shopspring/decimal"
)

// Decimal is an arbitrary precision fixed point number. Log sequence
// numbers and other numeric(p,s) counters are read into it; compare with
// Equal, not ==.
type Decimal = decimal.Decimal

// ParseDecimal parses the textual form a driver delivers for numeric columns.
func ParseDecimal(s string) (Decimal, error) {
	return decimal.NewFromString(s)
}

// ToDecimal converts a raw driver value. Floating point input is refused:
// a decimal column that arrives as float has already lost precision.
func ToDecimal(raw any) (Decimal, error) {
	switch v := raw.(type) {
	case []byte:
		return ParseDecimal(string(v))
	case string:
		return ParseDecimal(v)
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return ParseDecimal(fmt.Sprintf("%d", v))
	case Decimal:
		return v, nil
	case float32, float64:
		return Decimal{}, fmt.Errorf("refusing lossy conversion from %T", raw)
	default:
		return Decimal{}, unsupported(raw)
	}
}
