package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBelowMinimum is returned when an order does not reach the minimum total.
	ErrBelowMinimum = errors.New("order total is below the minimum")
	// ErrPersistence wraps store failures; the caller may retry.
	ErrPersistence = errors.New("failed to persist invoice")
	// ErrUnsupportedAttachment is returned for files that are not images.
	ErrUnsupportedAttachment = errors.New("unsupported attachment type")
	// ErrAttachmentTooLarge is returned for files over MaxAttachmentSize.
	ErrAttachmentTooLarge = errors.New("attachment is too large")
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field of a request.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidationError reports whether err carries field errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrEnhancementTimeout is returned when the generator does not answer in time.
var ErrEnhancementTimeout = errors.New("line item enhancement timed out")
