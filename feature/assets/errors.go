package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("asset not found")
	// ErrMalformedPath aborts a batch whose source produced a path without a name.
	ErrMalformedPath = errors.New("malformed asset path")
	// ErrUnknownKind is returned when parsing a cache kind fails.
	ErrUnknownKind = errors.New("unknown asset kind")
)

// NotFoundError reports a lookup miss in one cache.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind.singular(), e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
