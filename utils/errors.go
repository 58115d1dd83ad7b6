package utils

import (
	"errors"
	"net/http"
)

// APIError is a business-rule violation raised at the point of detection and
// propagated unchanged to the HTTP boundary.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewBadRequest flags malformed input or a failed validation rule.
func NewBadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized flags a missing, invalid or expired credential.
func NewUnauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewNotFound flags a referenced entity that is absent or soft-deleted.
func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewConflict flags a duplicate of a unique resource.
func NewConflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message}
}

// AsAPIError unwraps err into an APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
