package conversation

import "errors"

var (
	ErrNotFound     = errors.New("conversation not found")
	ErrEmptyMessage = errors.New("message content is empty")
	ErrNotOwner     = errors.New("conversation belongs to another patient")
)
