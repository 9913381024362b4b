package notification

import "errors"

var ErrNotFound = errors.New("notification not found")
