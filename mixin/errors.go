package mixin

import (
	"errors"
	"strconv"
)

// ErrMissingAttribute is the sentinel for optional attributes that were never set.
var ErrMissingAttribute = errors.New("mixin: missing attribute")

// MissingAttributeError reports that Display ran before the mixin method that
// sets Attribute was called on a value of type Type.
type MissingAttributeError struct {
	Type      string
	Attribute string
}

// Error implements the error interface.
func (e *MissingAttributeError) Error() string {
	// Example: mixin: Report has no attribute "source"
	return "mixin: " + e.Type + " has no attribute " + strconv.Quote(e.Attribute)
}

// Unwrap lets errors.Is match ErrMissingAttribute.
func (e *MissingAttributeError) Unwrap() error { return ErrMissingAttribute }
