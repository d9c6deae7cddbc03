package assess

import "fmt"

// The engine reports failures to callers through three error kinds.
// Anything else (LLM outages, unparsable replies) is absorbed internally
// by retries and fallbacks and never crosses this boundary.

// ValidationError indicates a malformed request: unknown part, bad
// position, missing subject.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError indicates a request that is valid in form but collides
// with current state: beginning a second screening, answering a stale
// question, or concurrent requests for the same subject.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// NotFoundError indicates a missing session or result.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}
