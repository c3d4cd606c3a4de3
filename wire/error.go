// ABOUTME: Domain error envelope produced by the backend and carried opaquely through the client.
// ABOUTME: Error implements the error interface; AsError recovers it from wrapped errors.
package wire

import (
	"errors"
	"fmt"
	"net/http"
)

// Descriptions used for errors the client synthesizes itself.
const (
	InternalDescription  = "Internal server error."
	TransportDescription = "Error from request to API."
)

// Error is the backend's error payload. Status is authoritative for
// classification; the HTTP status of the carrying response is not.
type Error struct {
	Description string            `json:"description"`
	Status      uint16            `json:"status"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// NewError builds an Error. fields may be nil.
func NewError(description string, status uint16, fields map[string]string) Error {
	return Error{Description: description, Status: status, Fields: fields}
}

// InternalError is the generic 500 used when a response cannot be understood.
func InternalError() Error {
	return NewError(InternalDescription, http.StatusInternalServerError, nil)
}

// TransportError is the generic 500 used when a request never got a response.
func TransportError() Error {
	return NewError(TransportDescription, http.StatusInternalServerError, nil)
}

func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Description)
}

// IsUnauthorized reports whether the error signals an invalid session.
func (e Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// AsError extracts an Error from err. Anything that is not an Error is
// reported as an internal error so callers never surface raw Go errors.
func AsError(err error) Error {
	var we Error
	if errors.As(err, &we) {
		return we
	}
	var pe *Error
	if errors.As(err, &pe) && pe != nil {
		return *pe
	}
	return InternalError()
}
