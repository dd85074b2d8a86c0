package helpers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a ServiceError for transport mapping.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindBadRequest
	KindConflict
	KindForbidden
	KindUnauthorized
)

// ServiceError is a business-rule failure carrying a user-facing message.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a KindNotFound error
func NewNotFoundError(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

// NewBadRequestError creates a KindBadRequest error
func NewBadRequestError(message string) error {
	return &ServiceError{Kind: KindBadRequest, Message: message}
}

// NewConflictError creates a KindConflict error
func NewConflictError(message string) error {
	return &ServiceError{Kind: KindConflict, Message: message}
}

// NewForbiddenError creates a KindForbidden error
func NewForbiddenError(message string) error {
	return &ServiceError{Kind: KindForbidden, Message: message}
}

// NewUnauthorizedError creates a KindUnauthorized error
func NewUnauthorizedError(message string) error {
	return &ServiceError{Kind: KindUnauthorized, Message: message}
}

// ErrorKindOf returns the kind of the first ServiceError in err's chain.
func ErrorKindOf(err error) ErrorKind {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// ErrorMessageOf returns the user-facing message of err, or fallback for internal errors.
func ErrorMessageOf(err error, fallback string) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Kind != KindInternal {
		return svcErr.Message
	}
	return fallback
}

// HTTPStatusForError maps err to an HTTP status code.
func HTTPStatusForError(err error) int {
	switch ErrorKindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
