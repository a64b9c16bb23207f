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

package moerr

import (
	"errors"
	"fmt"
)

const (
	Ok uint16 = 0

	// Group 1: Internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301

	// Group 9: cursor and view contract errors. None of them is transient,
	// a forward-only cursor can not be rewound to retry.
	ErrInvalidCursorState uint16 = 20900
	ErrNullNotAllowed     uint16 = 20901
	ErrTypeMismatch       uint16 = 20902
	ErrOrdinalOutOfRange  uint16 = 20903
	ErrSchemaMismatch     uint16 = 20904

	// ErrEnd, the max value of MOErrorCode
	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	name             string
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	Ok: {"Ok", "ok"},

	ErrStart:    {"ErrStart", "internal error: error code start"},
	ErrInternal: {"ErrInternal", "internal error: %s"},

	ErrBadConfig:    {"ErrBadConfig", "invalid configuration: %s"},
	ErrInvalidInput: {"ErrInvalidInput", "invalid input: %s"},

	ErrInvalidCursorState: {"ErrInvalidCursorState", "%s: invalid cursor state: %s"},
	ErrNullNotAllowed:     {"ErrNullNotAllowed", "%s: column %d (%s) is NULL but was read as non-nullable %s"},
	ErrTypeMismatch:       {"ErrTypeMismatch", "%s: column %d (%s) can not be read as %s: %s"},
	ErrOrdinalOutOfRange:  {"ErrOrdinalOutOfRange", "%s: ordinal %d out of range, row has %d columns"},
	ErrSchemaMismatch:     {"ErrSchemaMismatch", "%s: declared columns do not match the result set: %s"},

	ErrEnd: {"ErrEnd", "internal error: end of errcode code"},
}

func newError(code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(NewInternalError("not exist MOErrorCode: %d", code))
	}
	if len(args) == 0 {
		return &Error{code: code, message: item.errorMsgOrFormat}
	}
	return &Error{code: code, message: fmt.Sprintf(item.errorMsgOrFormat, args...)}
}

type Error struct {
	code    uint16
	message string
	detail  string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Detail() string {
	return e.detail
}

// Display returns the message followed by the detail, if any.
func (e *Error) Display() string {
	if e.detail == "" {
		return e.message
	}
	return fmt.Sprintf("%s, detail: %s", e.message, e.detail)
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// CodeName returns the symbolic name of the error code, used as metric label.
func (e *Error) CodeName() string {
	return CodeName(e.code)
}

func (e *Error) WithDetail(detail string) *Error {
	e.detail = detail
	return e
}

// CodeName returns the symbolic name of code, or "Unknown".
func CodeName(code uint16) string {
	if item, ok := errorMsgRefer[code]; ok {
		return item.name
	}
	return "Unknown"
}

// IsMoErrCode reports whether e, or an error wrapped by e, is a *Error
// carrying code rc. A nil error matches Ok.
func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}
	me := DowncastError(e)
	if me == nil {
		return false
	}
	return me.code == rc
}

// DowncastError returns the first *Error in e's chain, or nil.
func DowncastError(e error) *Error {
	var me *Error
	if errors.As(e, &me) {
		return me
	}
	return nil
}

func NewInternalError(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInternal, xmsg)
}

func NewBadConfig(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrBadConfig, xmsg)
}

func NewInvalidInput(msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInvalidInput, xmsg)
}

func NewInvalidCursorState(cursor, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrInvalidCursorState, cursor, xmsg)
}

func NewNullNotAllowed(cursor string, ordinal int, column, typ string) *Error {
	return newError(ErrNullNotAllowed, cursor, ordinal, column, typ)
}

func NewTypeMismatch(cursor string, ordinal int, column, typ, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrTypeMismatch, cursor, ordinal, column, typ, xmsg)
}

func NewOrdinalOutOfRange(cursor string, ordinal, columns int) *Error {
	return newError(ErrOrdinalOutOfRange, cursor, ordinal, columns)
}

func NewSchemaMismatch(cursor, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ErrSchemaMismatch, cursor, xmsg)
}
