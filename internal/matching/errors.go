package matching

import "fmt"

// InputError represents invalid caller input to a match request: an empty
// job description or an empty candidate pool. It is surfaced immediately and
// never retried.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid match input: %s", e.Message)
}
