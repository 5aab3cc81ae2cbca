// Package llm provides the optional structured-extraction path backed by a
// generative language model. Extraction here is best-effort: every caller
// must tolerate failure and fall back to the heuristic extractors.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for cheap classification-style calls
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction with JSON output
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the standard tier
// when the requested one is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}
