package tracker

import "fmt"

// ValidationError is a user-visible, non-fatal rejection of an action. No
// state is mutated when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
