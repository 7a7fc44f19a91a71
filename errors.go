package xds

import "errors"

var (
	// ErrDuplicateKey is returned when inserting an identity that is already
	// present in a container.
	ErrDuplicateKey = errors.New("xds: duplicate key")
	// ErrNotFound is returned when an operation names an identity or key
	// that is not present.
	ErrNotFound = errors.New("xds: key not found")
	// ErrEmptyContainer is returned when reading from a container with no
	// live elements.
	ErrEmptyContainer = errors.New("xds: empty container")
	// ErrUnconvertiblePayload is returned when no identity function is given
	// and the payload type cannot be converted to the identity type.
	ErrUnconvertiblePayload = errors.New("xds: payload cannot be converted to identity")
)
