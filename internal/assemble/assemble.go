// Package assemble composes extraction outputs into one candidate record.
package assemble

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Rick03098/recruitment-matcher/internal/extract"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// previewLength is the bounded prefix of source text kept on the record for
// human review.
const previewLength = 500

var (
	resumeSuffixRe = regexp.MustCompile(`^(.+?)的简历$`)
	resumePrefixRe = regexp.MustCompile(`^简历[-_](.+)$`)
)

// Assemble builds a CandidateRecord from normalized text, its source name,
// and an optional external structured-extraction result. When the external
// result is present its fields win; any field it left empty falls back to the
// heuristic extractors over the same text. With no external result the record
// is built purely from heuristics.
func Assemble(text, sourceName string, external *types.ExtractedResume) types.CandidateRecord {
	record := types.CandidateRecord{
		Source:         sourceName,
		RawTextPreview: preview(text),
	}

	if external != nil {
		record.Name = external.Name
		record.Title = external.Title
		record.Skills = []string(external.Skills)
		record.ExperienceYears = external.ExperienceYears
		record.Experience = external.Experience
		record.Education = external.Education
		record.EducationDetail = external.EducationDetail
		record.Contact = external.Contact
		record.ContactDetail = external.ContactDetail
	}

	if record.Name == "" {
		record.Name = extract.Name(text)
	}
	if record.Name == "" {
		record.Name = NameFromSource(sourceName)
	}
	if record.Title == "" {
		record.Title = extract.Title(text)
	}
	if len(record.Skills) == 0 {
		record.Skills = extract.Skills(text)
	}
	if record.ExperienceYears == "" && len(record.Experience) == 0 {
		record.ExperienceYears = extract.ExperienceYears(text)
	}
	if record.Education == "" && record.EducationDetail == nil {
		record.Education = extract.Education(text)
	}
	if record.Contact == "" && record.ContactDetail == nil {
		record.Contact = contactDescriptor(text)
	}

	// Both extraction paths must hand the matcher the same shape.
	record.Skills = NormalizeSkills(record.Skills)

	return record
}

// NormalizeSkills converts a skills field of either shape, an already-split
// list or one comma-joined string, into the canonical []string form. Mixed
// sources produce both shapes and the ambiguity must not travel past this
// boundary.
func NormalizeSkills(items []string) []string {
	if len(items) == 1 && strings.ContainsAny(items[0], ",，、;；") {
		return types.SplitList(items[0])
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// NameFromSource derives a candidate name from the source filename: strip
// the extension, then unwrap the "X的简历" and "简历-X" naming patterns.
// Anything else is used verbatim.
func NameFromSource(sourceName string) string {
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	if m := resumeSuffixRe.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	if m := resumePrefixRe.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return base
}

// contactDescriptor builds a free-form contact descriptor from the phone and
// email heuristics. Returns the sentinel when neither is present.
func contactDescriptor(text string) string {
	parts := make([]string, 0, 2)
	if phone := extract.Phone(text); phone != "" {
		parts = append(parts, phone)
	}
	if email := extract.Email(text); email != "" {
		parts = append(parts, email)
	}
	if len(parts) == 0 {
		return extract.NotDetected
	}
	return strings.Join(parts, " / ")
}

// preview cuts a bounded prefix of the text, marking truncation with "...".
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}
