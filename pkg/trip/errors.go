package trip

import (
	"errors"
	"fmt"
)

// ErrMissingIdentifier is returned when a screen is entered without a trip id.
var ErrMissingIdentifier = errors.New("trip: missing identifier")

// ErrValidation is wrapped by every user input failure; the wrapped text is the
// message shown to the user.
var ErrValidation = errors.New("validation error")

// ErrNotFound is returned by data services when the requested record is absent.
var ErrNotFound = errors.New("not found")

// Invalid wraps ErrValidation with a user facing message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Message extracts the user facing part of a validation error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
