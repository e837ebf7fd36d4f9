package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("no user found with the given email")
	ErrNoteNotFound = errors.New("no note found with the given id")
	ErrEmailExists  = errors.New("a user with the given email already exists")
	ErrNoteIDExists = errors.New("recados contains the same note id more than once")
)

// FieldError reports a required field that was absent or empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

func Required(field string) error {
	return &FieldError{Field: field}
}
