package usecase

import (
	"errors"
	"maps"

	"site-admin/pkg/utils"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrUniquenessConflict matches (via errors.Is) a ValidationError in
	// which at least one field collided with another record.
	ErrUniquenessConflict = errors.New("uniqueness conflict")
)

const msgTaken = "has already been taken"

// ValidationError carries one message per rejected field. Nothing is
// written when it is returned.
type ValidationError struct {
	Fields    map[string]string
	conflicts map[string]bool
}

func newValidationError(fields map[string]string) *ValidationError {
	e := &ValidationError{Fields: map[string]string{}, conflicts: map[string]bool{}}
	maps.Copy(e.Fields, fields)
	return e
}

func (e *ValidationError) addConflict(field string) {
	e.Fields[field] = "The " + field + " " + msgTaken
	e.conflicts[field] = true
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrUniquenessConflict && len(e.conflicts) > 0
}

// IsConflict reports whether field failed a uniqueness rule.
func (e *ValidationError) IsConflict(field string) bool {
	return e.conflicts[field]
}
