package pipeline

import "fmt"

// EmptyDocumentError represents an ingestion request whose text was empty
// after normalization. It is caller input error, never retried.
type EmptyDocumentError struct {
	Source string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %q contains no text", e.Source)
}
