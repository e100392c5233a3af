package container

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies container failures.
type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeInvalidBinding
	ErrCodeCircularReference
	ErrCodeUnknownBinding
	ErrCodeConstructionFailed
	ErrCodeTypeMismatch
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:            "UNKNOWN",
	ErrCodeInvalidArgument:    "INVALID_ARGUMENT",
	ErrCodeInvalidBinding:     "INVALID_BINDING",
	ErrCodeCircularReference:  "CIRCULAR_REFERENCE",
	ErrCodeUnknownBinding:     "UNKNOWN_BINDING",
	ErrCodeConstructionFailed: "CONSTRUCTION_FAILED",
	ErrCodeTypeMismatch:       "TYPE_MISMATCH",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// Error is the failure type returned by every container operation.
//
// Name is the binding (or base type) the failure is about. Path holds the
// resolution path leading to an unknown binding, or the names forming a
// rejected cycle.
type Error struct {
	Code    ErrorCode
	Message string
	Name    string
	Cause   error
	Path    []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Name != "" {
		b.WriteString(fmt.Sprintf(" binding=%q:", e.Name))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so the sentinels below work
// with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrInvalidArgument    = &Error{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
	ErrInvalidBinding     = &Error{Code: ErrCodeInvalidBinding, Message: "invalid binding configuration encountered"}
	ErrCircularReference  = &Error{Code: ErrCodeCircularReference, Message: "circular dependency detected"}
	ErrUnknownBinding     = &Error{Code: ErrCodeUnknownBinding, Message: "unknown binding"}
	ErrConstructionFailed = &Error{Code: ErrCodeConstructionFailed, Message: "construction failed"}
	ErrTypeMismatch       = &Error{Code: ErrCodeTypeMismatch, Message: "type mismatch"}
)

func newError(code ErrorCode, name, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Name:    name,
		Cause:   cause,
	}
}

func errInvalidArgument(name, message string, cause error) *Error {
	return newError(ErrCodeInvalidArgument, name, message, cause)
}

func errInvalidBinding(name, message string) *Error {
	return newError(ErrCodeInvalidBinding, name, message, nil)
}

func errCircularReference(name string, cycle []string) *Error {
	e := newError(
		ErrCodeCircularReference,
		name,
		"circular dependency detected for "+name+": "+strings.Join(cycle, " -> "),
		nil,
	)
	e.Path = cycle
	return e
}

func errUnknownBinding(name string, path []string) *Error {
	msg := "no binding registered"
	if len(path) > 0 {
		msg = fmt.Sprintf("the binding %q depends on the missing %q (%s)",
			path[len(path)-1], name, strings.Join(append(path[:len(path):len(path)], name), " -> "))
	}
	e := newError(ErrCodeUnknownBinding, name, msg, nil)
	e.Path = append([]string(nil), path...)
	return e
}

func errConstructionFailed(name string, cause error) *Error {
	return newError(ErrCodeConstructionFailed, name, "constructor returned error", cause)
}

func errTypeMismatch(name, want string, got any) *Error {
	return newError(ErrCodeTypeMismatch, name, fmt.Sprintf("resolved to %T, want %s", got, want), nil)
}

func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidArgument
}

func IsInvalidBinding(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidBinding
}

func IsCircularReference(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCircularReference
}

func IsUnknownBinding(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnknownBinding
}

func IsConstructionFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConstructionFailed
}

func IsTypeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTypeMismatch
}
