// Package ingestion turns uploaded file bytes into plain text for the
// extraction pipeline.
package ingestion

import "fmt"

// ExtractionError represents a failure to get usable text out of a file:
// unsupported type, unreadable bytes, or an empty result.
type ExtractionError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text extraction failed for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("text extraction failed for %s: %s", e.Source, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
