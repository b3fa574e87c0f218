// Package apperr carries the error taxonomy shared by the service and
// availability layers so controllers can map failures to HTTP codes
// without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	// KindConflict is reserved for overlap prevention; nothing raises it yet.
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool   { return kindOf(err) == KindNotFound }
func IsValidation(err error) bool { return kindOf(err) == KindValidation }
func IsConflict(err error) bool   { return kindOf(err) == KindConflict }
