// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rick03098/recruitment-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of skills displayed per record
	maxSkillsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of one extracted record.
func (p *Printer) PrintCandidate(record *types.CandidateRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", record.Title))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", record.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", record.Education))
	sb.WriteString(fmt.Sprintf("Contact:    %s\n", record.Contact))
	sb.WriteString(fmt.Sprintf("Skills:     %s", skillSummary(record.Skills)))

	p.printBox("Candidate: "+record.Source, sb.String())
}

// PrintMatches outputs the ranked match results for one job description.
func (p *Printer) PrintMatches(outcome *types.MatchOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("JD Title:  %s\n", outcome.JobRequirements.JobTitle))
	sb.WriteString(fmt.Sprintf("JD Skills: %s\n", skillSummary(outcome.JobRequirements.Skills)))
	sb.WriteString("\n")

	for i, match := range outcome.Matches {
		sb.WriteString(fmt.Sprintf("%d. %s — %d%%\n", i+1, match.Name, match.MatchScore))
		sb.WriteString(fmt.Sprintf("   matched: %s\n", skillSummary(match.MatchedSkills)))
	}

	p.printBox(fmt.Sprintf("Match results (%d candidates)", len(outcome.Matches)), sb.String())
}

// skillSummary joins skills for display, truncating long lists.
func skillSummary(skills []string) string {
	if len(skills) == 0 {
		return "(none)"
	}
	shown := skills
	suffix := ""
	if len(skills) > maxSkillsToShow {
		shown = skills[:maxSkillsToShow]
		suffix = fmt.Sprintf(" ... and %d more", len(skills)-maxSkillsToShow)
	}
	return strings.Join(shown, ", ") + suffix
}
