// Package types defines the shared data model for résumé intake and matching.
package types

// SourceKind identifies how a raw document entered the system.
type SourceKind string

// Source kinds for RawDocument
const (
	// SourceFile marks text extracted from an uploaded file
	SourceFile SourceKind = "file"
	// SourcePasted marks text pasted directly by the user
	SourcePasted SourceKind = "pasted"
)

// ManualSource is the provenance label used when no filename exists.
const ManualSource = "manual"

// RawDocument is the unit of ingestion: raw text plus provenance.
// It is discarded once a CandidateRecord or JobRequirements is derived.
type RawDocument struct {
	Text       string     `json:"text"`
	SourceName string     `json:"source_name"`
	SourceKind SourceKind `json:"source_kind"`
}

// ContactInfo holds structured contact details from the richer extraction path.
type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// EducationInfo holds structured education details from the richer extraction path.
type EducationInfo struct {
	School string `json:"school,omitempty"`
	Major  string `json:"major,omitempty"`
	Degree string `json:"degree,omitempty"`
}

// ExperienceEntry is one structured work-history item.
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// CandidateRecord is the structured representation of one résumé.
//
// Descriptor fields (ExperienceYears, Education, Contact) are free-form
// strings because source text uses inconsistent units; the structured
// variants are populated only when the richer extraction path supplied them.
// Skills is always a flat list of strings, never a raw unsplit string.
type CandidateRecord struct {
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Skills          []string          `json:"skills"`
	ExperienceYears string            `json:"experience_years,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       string            `json:"education,omitempty"`
	EducationDetail *EducationInfo    `json:"education_detail,omitempty"`
	Contact         string            `json:"contact,omitempty"`
	ContactDetail   *ContactInfo      `json:"contact_detail,omitempty"`

	// RawTextPreview is a bounded prefix of the source text kept for human
	// review. It is never consulted by extraction or matching.
	RawTextPreview string `json:"raw_text_preview,omitempty"`

	// Source records provenance: the original filename or "manual".
	Source string `json:"source"`
}

// ExtractedResume is the best-effort structured record returned by the
// external (LLM-backed) extraction path. Field shapes stay loose:
// Skills absorbs both array and comma-joined string responses.
type ExtractedResume struct {
	Name            string            `json:"name,omitempty"`
	Title           string            `json:"title,omitempty"`
	Skills          StringList        `json:"skills,omitempty"`
	ExperienceYears string            `json:"experience_years,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       string            `json:"education,omitempty"`
	EducationDetail *EducationInfo    `json:"education_detail,omitempty"`
	Contact         string            `json:"contact,omitempty"`
	ContactDetail   *ContactInfo      `json:"contact_detail,omitempty"`
}
