package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an id does not resolve to a stored entity.
var ErrNotFound = errors.New("not found")

// FieldError names a violated constraint on one input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the full set of violated constraints for one
// write operation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
