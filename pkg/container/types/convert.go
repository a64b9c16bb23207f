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
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// The To* functions turn the values a database/sql driver hands out
// (int64, float64, bool, []byte, string, time.Time, or the driver's own
// types) into the Go type of a getter. Text protocol drivers deliver
// numbers as []byte, so textual input is parsed. A nil raw value is the
// caller's business: these functions are only called on non NULL values.

func unsupported(raw any) error {
	return fmt.Errorf("unsupported driver value of type %T", raw)
}

// ToInt narrows raw to the integer type T, failing instead of wrapping.
// Booleans are not integers.
func ToInt[T constraints.Integer](raw any) (T, error) {
	var zero T
	switch v := raw.(type) {
	case int64:
		return narrowSigned[T](v)
	case int32:
		return narrowSigned[T](int64(v))
	case int16:
		return narrowSigned[T](int64(v))
	case int8:
		return narrowSigned[T](int64(v))
	case int:
		return narrowSigned[T](int64(v))
	case uint8:
		return narrowUnsigned[T](uint64(v))
	case uint16:
		return narrowUnsigned[T](uint64(v))
	case uint32:
		return narrowUnsigned[T](uint64(v))
	case uint64:
		return narrowUnsigned[T](v)
	case []byte:
		return parseInt[T](string(v))
	case string:
		return parseInt[T](v)
	default:
		return zero, unsupported(raw)
	}
}

func parseInt[T constraints.Integer](s string) (T, error) {
	var zero T
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return narrowSigned[T](i)
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, fmt.Errorf("invalid integer %q", s)
	}
	return narrowUnsigned[T](u)
}

func narrowSigned[T constraints.Integer](v int64) (T, error) {
	t := T(v)
	if int64(t) != v || (t < 0) != (v < 0) {
		var zero T
		return zero, fmt.Errorf("value %d out of range", v)
	}
	return t, nil
}

func narrowUnsigned[T constraints.Integer](v uint64) (T, error) {
	t := T(v)
	if t < 0 || uint64(t) != v {
		var zero T
		return zero, fmt.Errorf("value %d out of range", v)
	}
	return t, nil
}

// ToBool accepts bool, 0/1 integers, MySQL BIT(1) bytes and boolean text.
func ToBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int64:
		return intToBool(v)
	case []byte:
		if len(v) == 1 && v[0] <= 1 {
			return v[0] == 1, nil
		}
		return strconv.ParseBool(string(v))
	case string:
		return strconv.ParseBool(v)
	default:
		i, err := ToInt[int64](raw)
		if err != nil {
			return false, err
		}
		return intToBool(i)
	}
}

func intToBool(v int64) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("value %d is not a boolean", v)
	}
}

func ToFloat64(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, unsupported(raw)
	}
}

// ToFloat32 narrows binary values only when no precision is lost, so a
// REAL widened to float64 by the driver comes back while a FLOAT value
// that does not fit fails. Text is parsed to the nearest float32.
func ToFloat32(raw any) (float32, error) {
	switch v := raw.(type) {
	case float32:
		return v, nil
	case float64:
		f := float32(v)
		if float64(f) != v && !math.IsNaN(v) {
			return 0, fmt.Errorf("value %v does not fit float32", v)
		}
		return f, nil
	case int64:
		f := float32(v)
		if int64(f) != v {
			return 0, fmt.Errorf("value %d does not fit float32", v)
		}
		return f, nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 32)
		return float32(f), err
	case string:
		f, err := strconv.ParseFloat(v, 32)
		return float32(f), err
	default:
		return 0, unsupported(raw)
	}
}

// ToString accepts textual values only. Numbers are not formatted: a
// string getter on a numeric column is a contract error, not a display
// request.
func ToString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", unsupported(raw)
	}
}

// ToBytes copies binary values so the result outlives the driver buffer.
func ToBytes(raw any) ([]byte, error) {
	switch v := raw.(type) {
	case []byte:
		return append(make([]byte, 0, len(v)), v...), nil
	case string:
		return []byte(v), nil
	default:
		return nil, unsupported(raw)
	}
}
