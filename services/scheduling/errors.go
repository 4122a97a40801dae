package scheduling

import "fmt"

// ConflictError means the requested slot became unavailable between the
// availability fetch and the commit. The caller should re-fetch availability and
// pick another slot; the engine never retries on its own.
type ConflictError struct {
	ConflictingAppointmentID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflictError: slot overlaps appointment %s", e.ConflictingAppointmentID)
}

// ValidationError means the request itself is malformed (past start, duration
// mismatch, unknown service). Not retryable without changing the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s", e.Message)
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PolicyValidationError means a service's booking policy is malformed. It is
// surfaced at service create/update time; the calculator and commit path assume
// they only ever see validated policies.
type PolicyValidationError struct {
	Message string
}

func (e *PolicyValidationError) Error() string {
	return fmt.Sprintf("policyValidationError: %s", e.Message)
}

func NewPolicyValidationError(format string, args ...interface{}) error {
	return &PolicyValidationError{Message: fmt.Sprintf(format, args...)}
}
