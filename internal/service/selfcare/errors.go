package selfcare

import "errors"

var (
	ErrNotFound      = errors.New("self-care exercise not found")
	ErrInvalidRating = errors.New("mood ratings must be between 1 and 5")
)
