// Package apperr carries the error kinds the API distinguishes in its
// responses. Repositories and services return these; the HTTP layer maps
// them to status codes without inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindReference
	KindPermissionDenied
)

type Error struct {
	Kind    Kind
	Field   string // offending field, when known
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Validation(field, reason string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: reason}
}

func Reference(field, reason string) *Error {
	return &Error{Kind: KindReference, Field: field, Message: reason}
}

func PermissionDenied(reason string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: reason}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// From unwraps err into *Error, or nil if it is not one.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
