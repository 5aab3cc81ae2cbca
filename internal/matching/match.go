// Package matching scores candidate records against a job description.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Rick03098/recruitment-matcher/internal/extract"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// sentinelSkill is substituted when the JD text contains no vocabulary
// keyword. It keeps the score division well-defined while guaranteeing every
// candidate scores zero, since no real skill matches the literal token.
const sentinelSkill = "技能"

// Analysis score bands
const (
	highBand    = 80
	partialBand = 50
)

// Match scores every candidate against the job description text and returns
// the results sorted descending by score. Ties keep their relative input
// order. The call is pure: identical inputs always produce identical output.
func Match(jobDescription string, candidates []types.CandidateRecord) (*types.MatchOutcome, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &InputError{Message: "job description text is empty"}
	}
	if len(candidates) == 0 {
		return nil, &InputError{Message: "candidate pool is empty"}
	}

	requirements := ExtractRequirements(jobDescription)

	matches := make([]types.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		matches = append(matches, scoreCandidate(candidate, requirements.Skills))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return &types.MatchOutcome{
		Matches:         matches,
		JobRequirements: requirements,
	}, nil
}

// ExtractRequirements parses a job description into its title and skill
// keywords using the same vocabularies as résumé extraction.
func ExtractRequirements(jobDescription string) types.JobRequirements {
	skills := extract.Skills(jobDescription)
	if len(skills) == 0 {
		skills = []string{sentinelSkill}
	}
	return types.JobRequirements{
		JobTitle: extract.Title(jobDescription),
		Skills:   skills,
	}
}

// scoreCandidate computes one candidate's match result against the JD
// keywords. A candidate skill matches when it contains a JD keyword or a JD
// keyword contains it, case-insensitively. Substring containment runs both
// ways rather than exact equality.
func scoreCandidate(candidate types.CandidateRecord, jdSkills []string) types.MatchResult {
	matched := make([]string, 0, len(candidate.Skills))
	missing := make([]string, 0, len(candidate.Skills))

	for _, skill := range candidate.Skills {
		if matchesAny(skill, jdSkills) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(jdSkills))))
	if score > 100 {
		score = 100
	}

	return types.MatchResult{
		CandidateRecord: candidate,
		MatchScore:      score,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Analysis:        analysisFor(candidate.Name, score, matched),
	}
}

// matchesAny applies the bidirectional case-insensitive substring test
// between one candidate skill and every JD keyword.
func matchesAny(skill string, jdSkills []string) bool {
	skillLower := strings.ToLower(skill)
	for _, jd := range jdSkills {
		jdLower := strings.ToLower(jd)
		if strings.Contains(skillLower, jdLower) || strings.Contains(jdLower, skillLower) {
			return true
		}
	}
	return false
}

// analysisFor renders the banded, deterministic explanation text.
func analysisFor(name string, score int, matched []string) string {
	switch {
	case score >= highBand:
		return fmt.Sprintf("%s高度匹配该职位，具备%s等核心技能", name, strings.Join(matched, "、"))
	case score >= partialBand:
		return fmt.Sprintf("%s部分匹配该职位，熟悉%s，但缺少部分关键技能", name, strings.Join(matched, "、"))
	default:
		return fmt.Sprintf("%s与该职位匹配度较低，可能需要额外培训", name)
	}
}
