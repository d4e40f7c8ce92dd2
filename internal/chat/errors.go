package chat

import "errors"

var (
	// ErrEmptyMessage indicates a chat request without a message.
	ErrEmptyMessage = errors.New("message is required")

	// ErrSessionRequired indicates a request without a session ID.
	ErrSessionRequired = errors.New("session ID is required")
)
