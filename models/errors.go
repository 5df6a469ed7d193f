package models

import "errors"

// Not-found sentinels shared by the repositories, the HTTP handlers and the
// API client, so client builds do not pull in the store driver.
var (
	ErrCanvasNotFound  = errors.New("canvas not found")
	ErrElementNotFound = errors.New("element not found")
)

// ValidationError marks malformed or missing caller input. Handlers map it
// to a 400 response.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}
