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
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Variant holds a runtime typed column value without committing to a Go
// type. The only supported interpretation is the diagnostic String.
type Variant struct {
	raw   any
	valid bool
}

// NewVariant wraps raw. Byte slices are copied.
func NewVariant(raw any) Variant {
	if raw == nil {
		return Variant{}
	}
	if b, ok := raw.([]byte); ok {
		raw = append([]byte(nil), b...)
	}
	return Variant{raw: raw, valid: true}
}

func (v Variant) IsNull() bool {
	return !v.valid
}

// Raw returns the value as the driver delivered it.
func (v Variant) Raw() any {
	return v.raw
}

// String renders the value for logs and dumps. NULL renders as "NULL" and
// binary as upper case hex with a 0x prefix.
func (v Variant) String() string {
	if !v.valid {
		return "NULL"
	}
	switch x := v.raw.(type) {
	case []byte:
		return "0x" + strings.ToUpper(hex.EncodeToString(x))
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Format renders the value as a column of the given kind. Text protocol
// drivers deliver every value as bytes, which only binary kinds show as
// hex.
func (v Variant) Format(kind Kind) string {
	if b, ok := v.raw.([]byte); ok && v.valid {
		switch kind {
		case KindBytes, KindGuid, KindVariant, KindUnknown:
		default:
			return string(b)
		}
	}
	return v.String()
}

// MarshalText lets json encoders print the diagnostic form.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
