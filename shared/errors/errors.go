package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) HTTPStatus() int {
	return e.StatusCode
}

// NotFoundError means the resource is absent or deliberately hidden from the caller.
type NotFoundError struct {
	Message string
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AuthorizationError means the resource is visible but the caller has no rights on it.
type AuthorizationError struct {
	Message string
}

func NewAuthorization(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func (e *AuthorizationError) HTTPStatus() int {
	return http.StatusForbidden
}

// StatusCoder is implemented by every error that knows its HTTP status.
type StatusCoder interface {
	error
	HTTPStatus() int
}

func NewValidation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// Check if err (or anything it wraps) is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode returns the HTTP status carried by err, 500 if it carries none.
func StatusCode(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return http.StatusInternalServerError
}
