package config

import "errors"

var (
	// ErrMissingRequiredField indicates a required field resolved to empty
	// after all sources were consulted
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidFieldValue indicates a value that could not be coerced to the
	// field's declared type
	ErrInvalidFieldValue = errors.New("invalid field value")
)
