package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionMissing       = errors.New("session identity missing")
	ErrLoginRejected        = errors.New("login rejected")
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrSubmissionRejected   = errors.New("survey submission rejected")
	ErrPipelineRejected     = errors.New("pipeline run rejected")
	ErrTransport            = errors.New("transport failure")
	ErrNoSuchPage           = errors.New("no such survey page")
)

// HTTPStatusError is returned when the server answers outside the 2xx range.
type HTTPStatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

type ValidationError struct {
	Key   string
	Label string
}

func (e *ValidationError) Error() string {
	return "Please fill out the required field: " + e.Label
}
