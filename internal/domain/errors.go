package domain

// PolicyViolationError reports an action attempted outside its allowed
// window (reschedule, payment completion, cancellation). It always carries
// the human-readable reason so callers can show the user exactly why the
// action is blocked.
type PolicyViolationError struct {
	Message string
}

func (e *PolicyViolationError) Error() string {
	return e.Message
}

// NewPolicyViolation creates a policy violation error
func NewPolicyViolation(message string) *PolicyViolationError {
	return &PolicyViolationError{Message: message}
}
