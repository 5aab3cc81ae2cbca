package types

// JobRequirements is the structured view of one job description.
type JobRequirements struct {
	// JobTitle is the first title-vocabulary hit in the JD text, if any.
	JobTitle string `json:"job_title,omitempty"`

	// Skills holds the JD keywords in vocabulary scan order. When the scan
	// finds nothing, a single-element sentinel is substituted so score
	// division is always well-defined.
	Skills []string `json:"skills"`
}

// MatchResult extends a candidate record with the outcome of scoring it
// against one job description. Results are ephemeral: they live only for the
// duration of one match request.
type MatchResult struct {
	CandidateRecord

	// MatchScore is the rounded percentage of JD keywords the candidate
	// matched, always within [0, 100].
	MatchScore int `json:"match_score"`

	// MatchedSkills are the candidate skills that matched a JD keyword,
	// in candidate skill order.
	MatchedSkills []string `json:"matched_skills"`

	// MissingSkills are the candidate skills that did NOT match any JD
	// keyword. Note this is candidate-relative, not the JD skills the
	// candidate lacks.
	MissingSkills []string `json:"missing_skills"`

	// Analysis is a deterministic, templated explanation of the score.
	Analysis string `json:"analysis"`
}

// MatchOutcome bundles the ranked results with the parsed job requirements.
type MatchOutcome struct {
	Matches         []MatchResult   `json:"matches"`
	JobRequirements JobRequirements `json:"job_requirements"`
}
