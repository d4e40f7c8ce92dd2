package http

import (
	"errors"

	"python-docs-copilot/internal/chat"
)

// knownError reports whether the use case error maps to a 400. Anything
// else is an internal failure and must not leak its message.
func knownError(err error) bool {
	return errors.Is(err, chat.ErrEmptyMessage) ||
		errors.Is(err, chat.ErrSessionRequired)
}
