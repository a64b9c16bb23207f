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

import "go.uber.org/zap"

// ValidationMode decides when a bound schema is checked against the live
// result shape.
type ValidationMode uint8

const (
	// ValidateOnOpen checks in New, before any row is read.
	ValidateOnOpen ValidationMode = iota
	// ValidateOnFirstRow checks in the first Advance.
	ValidateOnFirstRow
	// ValidateOff never checks. Drift then surfaces as a type mismatch on
	// the first access of a drifted column, or not at all.
	ValidateOff
)

func (m ValidationMode) String() string {
	switch m {
	case ValidateOnOpen:
		return "open"
	case ValidateOnFirstRow:
		return "first-row"
	case ValidateOff:
		return "off"
	default:
		return "unknown"
	}
}

type Option func(*Cursor)

// WithBorrowed makes the cursor leave the row source open on Close. The
// caller that created the source keeps closing it.
func WithBorrowed() Option {
	return func(c *Cursor) {
		c.owned = false
	}
}

// WithSchema binds the declared columns of a view.
func WithSchema(s Schema) Option {
	return func(c *Cursor) {
		c.schema = s
	}
}

func WithValidation(mode ValidationMode) Option {
	return func(c *Cursor) {
		c.mode = mode
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Cursor) {
		c.logger = logger
	}
}

// WithName names the cursor in errors, logs and metrics, usually after the
// view it reads.
func WithName(name string) Option {
	return func(c *Cursor) {
		c.name = name
	}
}

// WithMixedEndianGuid decodes 16 byte guids in SQL Server byte order.
func WithMixedEndianGuid() Option {
	return func(c *Cursor) {
		c.mixedEndianGuid = true
	}
}
