package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalidInput wraps a user-facing validation message. The HTTP layer shows
// the text after the sentinel prefix verbatim.
func invalidInput(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s id=%s", ErrNotFound, kind, id)
}
