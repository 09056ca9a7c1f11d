package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfiguration indicates the service is missing configuration it needs to serve the request.
var ErrConfiguration = errors.New("configuration error")

// ErrUpstream indicates that an upstream provider answered but rejected the request.
var ErrUpstream = errors.New("upstream rejected request")

// ErrTransport indicates that an upstream provider could not be reached or returned garbage.
var ErrTransport = errors.New("upstream transport error")

// ProviderError carries the message an upstream provider gave for rejecting a request.
// It matches ErrUpstream with errors.Is.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return ErrUpstream
}
