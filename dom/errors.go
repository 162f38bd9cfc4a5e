package dom

import (
	"errors"
	"fmt"
)

// Error is a host error, named like the DOMException it corresponds to.
type Error struct {
	Name    string // e.g., "InvalidCharacterError"
	Message string
	kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Unwrap makes errors.Is work with the sentinel errors below.
func (e *Error) Unwrap() error {
	return e.kind
}

// Sentinel errors, one per exception name in use.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrHierarchyRequest = errors.New("hierarchy request")
	ErrNotFound         = errors.New("not found")
	ErrSyntax           = errors.New("syntax")
)

func invalidCharacter(format string, args ...interface{}) error {
	return &Error{Name: "InvalidCharacterError", Message: fmt.Sprintf(format, args...), kind: ErrInvalidCharacter}
}

func hierarchyRequest(format string, args ...interface{}) error {
	return &Error{Name: "HierarchyRequestError", Message: fmt.Sprintf(format, args...), kind: ErrHierarchyRequest}
}

func notFound(format string, args ...interface{}) error {
	return &Error{Name: "NotFoundError", Message: fmt.Sprintf(format, args...), kind: ErrNotFound}
}

func syntaxError(format string, args ...interface{}) error {
	return &Error{Name: "SyntaxError", Message: fmt.Sprintf(format, args...), kind: ErrSyntax}
}
