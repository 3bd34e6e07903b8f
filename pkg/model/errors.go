package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldError describes a single rejected field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a record violates a field constraint.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// OrNil returns nil if no field was rejected. The explicit nil avoids
// handing out a typed nil inside the error interface.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// NewID returns a fresh record identifier
func NewID() string {
	return uuid.New().String()
}

// IsValidID reports whether s is a record identifier in canonical form.
func IsValidID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.String() == s
}

// CanonicalID returns the canonical form of any accepted identifier
// spelling (upper case, braced, urn:uuid:).
func CanonicalID(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return s, false
	}
	return id.String(), true
}
