package kundli

import (
	"errors"
	"fmt"
)

// ResponseNotOK is the message carried by every APIError.
const ResponseNotOK = "HTTP Response Not OK"

// ErrUnknownEndpoint is returned when an endpoint name is not in the catalog.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// APIError reports a response outside the [200,206] range. A transport
// failure is reported the same way with StatusCode 0 and the cause in Err.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// SerializationError reports a payload that could not be encoded as JSON.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string { return fmt.Sprintf("encode payload: %v", e.Err) }
func (e *SerializationError) Unwrap() error { return e.Err }

// MissingParamError reports a template parameter the caller did not supply.
type MissingParamError struct {
	Endpoint string
	Param    string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("endpoint %q requires path parameter %q", e.Endpoint, e.Param)
}
