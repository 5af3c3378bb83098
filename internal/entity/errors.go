package entity

import "errors"

// Sentinel errors for registry failures. They are returned wrapped with
// context; match them with errors.Is.
var (
	// ErrInvalidInput reports a rejected argument, such as an empty name.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIO reports that an export destination could not be opened or written.
	ErrIO = errors.New("io failure")
	// ErrSerialization reports that the record set could not be encoded.
	ErrSerialization = errors.New("serialization failure")
)
