package patient

import "errors"

var (
	ErrNotFound     = errors.New("patient not found")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidDOB   = errors.New("date of birth must be in the past")
)
