// Package generation talks to the external text-generation services used to
// expand short line item descriptions.
package generation

import (
	"context"
	"errors"
	"net/http"
)

// GenerateRequest is a single prompt with its fixed instructional context.
type GenerateRequest struct {
	Prompt         string
	AttachmentURLs []string
	Context        string
}

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ErrEmptyResponse is returned when the provider answered without any text.
var ErrEmptyResponse = errors.New("generation service returned no text")

// TransientError represents a temporary failure that may succeed when the
// user retries.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string { return e.err.Error() }
func (e *TransientError) Unwrap() error { return e.err }

// NewTransientError wraps an error as transient.
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError represents a failure that will not go away on retry
// (bad credentials, rejected prompt).
type FatalError struct {
	err error
}

func (e *FatalError) Error() string { return e.err.Error() }
func (e *FatalError) Unwrap() error { return e.err }

// NewFatalError wraps an error as fatal.
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// IsTransient reports whether err is marked transient.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsFatal reports whether err is marked fatal.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// classifyStatus wraps err according to the provider's HTTP status.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests, status >= 500:
		return NewTransientError(err)
	case status >= 400:
		return NewFatalError(err)
	default:
		return NewTransientError(err)
	}
}
