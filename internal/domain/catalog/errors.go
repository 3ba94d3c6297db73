package catalog

import "errors"

var (
	// ErrMissingField signals a catalog record without a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidField signals a catalog record field with an invalid value.
	ErrInvalidField = errors.New("invalid field value")
)
