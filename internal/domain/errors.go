package domain

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrStorage       = errors.New("storage error")
	ErrPersistence   = errors.New("persistence error")
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidFileID = errors.New("invalid file id")
)

// ValidationError rejects client input. It matches ErrValidation.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
