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

package cursor

// RowFunc builds one record from the current row of a cursor.
type RowFunc[R any] func(*Cursor) (R, error)

// MaterializeAll reads every remaining row into a record, in cursor order.
// The first error from fn or from the source ends the read. No rows yield
// an empty, non nil slice.
func MaterializeAll[R any](c *Cursor, fn RowFunc[R]) ([]R, error) {
	out := make([]R, 0)
	err := ForEach(c, fn, func(r R) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach hands every remaining row to each as soon as it is built.
func ForEach[R any](c *Cursor, fn RowFunc[R], each func(R) error) error {
	for c.Advance() {
		r, err := fn(c)
		if err != nil {
			return err
		}
		if err = each(r); err != nil {
			return err
		}
	}
	return c.Err()
}
