package services

import "errors"

var (
	// ErrAlreadyCompleted is the one domain-specific invariant violation:
	// the goal already has a completion for the requested day. Handlers
	// surface it with a distinguishable code so the UI can say "already
	// done today" instead of a generic failure.
	ErrAlreadyCompleted = errors.New("already completed today")
)

// ValidationError marks input the caller can correct (empty name, past
// deadline, out-of-order day). Always maps to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
