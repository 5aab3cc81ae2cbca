package llm

import "fmt"

// ServiceError represents a failure of the external extraction service:
// quota, auth, transport, or a malformed response. Callers catch it at the
// assembler boundary and fall back to heuristic extraction.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
