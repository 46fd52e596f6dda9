package core

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned by the frame loop after a user interrupt.
var ErrInterrupted = errors.New("interrupted")

// FatalError reports a violated internal invariant or an unrecoverable
// failure. The frame loop never resumes after one.
type FatalError struct {
	Location string
	Message  string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal error at %s: %s", e.Location, e.Message)
}

// Fatalf builds a FatalError for the given location.
func Fatalf(location, format string, args ...any) *FatalError {
	return &FatalError{Location: location, Message: fmt.Sprintf(format, args...)}
}
