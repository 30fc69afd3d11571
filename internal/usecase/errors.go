package usecase

import (
	"errors"
	"strings"
)

// ErrLocationUnavailable signals that every geolocation tier failed. It is a
// definitive outcome, distinct from a fix with zero accuracy.
var ErrLocationUnavailable = errors.New("location unavailable")

// ErrInvalidCredentials covers both a wrong password and an unknown username.
// Intentionally a single message so the two cases are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the full list of input violations found before any
// write. Submission reports all of them together, not just the first.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

func (e ValidationErrors) Messages() []string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Message
	}
	return msgs
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
