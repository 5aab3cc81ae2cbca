// Package normalize bounds and gates raw document text before extraction.
package normalize

import "strings"

// Length limits, in runes. Truncation is a hard prefix cut with no
// word-boundary adjustment.
const (
	// MinUsableLength is the minimum trimmed length for text to be treated
	// as high-confidence input. Shorter text is still processed, but callers
	// should treat the results as low-confidence.
	MinUsableLength = 50

	// MaxExtractionLength caps text sent to the structured-extraction
	// service, which enforces its own token limits.
	MaxExtractionLength = 15000

	// MaxClassificationLength caps text for classification-style calls with
	// tighter limits.
	MaxClassificationLength = 4000
)

// Result is the outcome of normalizing one raw text.
type Result struct {
	// Usable is false when the trimmed text is shorter than MinUsableLength.
	Usable bool
	// Text is the trimmed text. Empty input yields an empty, unusable result
	// rather than an error.
	Text string
}

// Normalize trims raw text and reports whether it clears the minimum length
// gate. It never fails: empty or whitespace-only input is a valid unusable
// result.
func Normalize(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	return Result{
		Usable: len([]rune(trimmed)) >= MinUsableLength,
		Text:   trimmed,
	}
}

// ForExtraction bounds text for the structured-extraction service.
func ForExtraction(text string) string {
	return truncate(text, MaxExtractionLength)
}

// ForClassification bounds text for classification-style service calls.
func ForClassification(text string) string {
	return truncate(text, MaxClassificationLength)
}

// truncate cuts text to at most max runes.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
