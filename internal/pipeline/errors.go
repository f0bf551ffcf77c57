package pipeline

import (
	"errors"
	"fmt"
)

// Error kinds, matched with errors.Is
var (
	ErrAcquisition = errors.New("acquisition failed")
	ErrParse       = errors.New("parse failed")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failed")
)

// StageError is returned by Run when a stage fails. It unwraps to both the
// error kind and the underlying cause.
type StageError struct {
	Stage State
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
