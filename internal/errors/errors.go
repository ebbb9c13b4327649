package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}

func Validation(message string) *ErrorWithStatusCode {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *ErrorWithStatusCode {
	return New(message, http.StatusUnauthorized)
}

func Forbidden(message string) *ErrorWithStatusCode {
	return New(message, http.StatusForbidden)
}

func NotFound(message string) *ErrorWithStatusCode {
	return New(message, http.StatusNotFound)
}

// StatusCode maps any error onto an HTTP status. Errors that don't carry
// one are internal failures.
func StatusCode(err error) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
