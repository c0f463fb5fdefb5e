package service

import (
	"errors"
	"net/http"
)

// ValidationError reports missing required input. Status is the HTTP
// status the caller should respond with.
type ValidationError struct {
	Message string
	Status  int
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg, Status: http.StatusBadRequest}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

const (
	msgListingFieldsRequired = "title, location, and price are required"
	msgContactFieldsRequired = "name and email are required"
)
