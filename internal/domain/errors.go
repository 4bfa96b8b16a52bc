package domain

import "errors"

// Error kinds. Concrete errors wrap one (or more) of these, callers match with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrCapacity   = errors.New("capacity exceeded")
	ErrNotFound   = errors.New("not found")
	ErrIO         = errors.New("io error")
)
