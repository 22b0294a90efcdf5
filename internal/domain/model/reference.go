package model

import "strings"

// RefKind tags how a candidate or job reference was specified.
type RefKind int

const (
	// RefUnspecified means the payload carried neither an id nor usable text.
	RefUnspecified RefKind = iota
	// RefByID means an explicit store id was supplied. It is trusted as-is;
	// existence is only checked by the foreign-key constraint at insert time.
	RefByID
	// RefByText means free text was supplied and must be resolved.
	RefByText
)

// CandidateRef is a transient reference to a candidate: an explicit id, a
// display name to resolve, or nothing. It exists only for the duration of one
// resolution call and is never persisted.
type CandidateRef struct {
	kind RefKind
	id   int64
	name string
}

// CandidateByID builds an explicit-id candidate reference.
func CandidateByID(id int64) CandidateRef {
	return CandidateRef{kind: RefByID, id: id}
}

// CandidateByName builds a free-text candidate reference. An empty name after
// trimming yields an unspecified reference.
func CandidateByName(name string) CandidateRef {
	name = strings.TrimSpace(name)
	if name == "" {
		return CandidateRef{}
	}
	return CandidateRef{kind: RefByText, name: name}
}

// Kind reports how the reference was specified.
func (r CandidateRef) Kind() RefKind { return r.kind }

// ID returns the explicit id. Only meaningful when Kind() == RefByID.
func (r CandidateRef) ID() int64 { return r.id }

// Name returns the display-name text. Only meaningful when Kind() == RefByText.
func (r CandidateRef) Name() string { return r.name }

// JobRef is a transient reference to a job: an explicit id, a title+company
// pair to resolve, or nothing.
type JobRef struct {
	kind    RefKind
	id      int64
	title   string
	company string
}

// JobByID builds an explicit-id job reference.
func JobByID(id int64) JobRef {
	return JobRef{kind: RefByID, id: id}
}

// JobByText builds a free-text job reference. The title+company pair is the
// job's natural key; resolution requires both, but the reference keeps
// whatever was supplied so the resolver can report it as unresolvable.
func JobByText(title, company string) JobRef {
	title = strings.TrimSpace(title)
	company = strings.TrimSpace(company)
	if title == "" && company == "" {
		return JobRef{}
	}
	return JobRef{kind: RefByText, title: title, company: company}
}

// Kind reports how the reference was specified.
func (r JobRef) Kind() RefKind { return r.kind }

// ID returns the explicit id. Only meaningful when Kind() == RefByID.
func (r JobRef) ID() int64 { return r.id }

// Title returns the title text. Only meaningful when Kind() == RefByText.
func (r JobRef) Title() string { return r.title }

// Company returns the company text. Only meaningful when Kind() == RefByText.
func (r JobRef) Company() string { return r.company }

// Complete reports whether a text reference carries both halves of the
// composite key.
func (r JobRef) Complete() bool {
	return r.kind == RefByText && r.title != "" && r.company != ""
}

// SimilarityMatch is the best-scoring row of a fuzzy lookup.
type SimilarityMatch struct {
	ID    int64
	Score float64
}

// JobSimilarityMatch is the best-scoring row of a fuzzy job lookup, keeping
// the two component scores so callers can average them.
type JobSimilarityMatch struct {
	ID           int64
	TitleScore   float64
	CompanyScore float64
}

// Average returns the combined score used against the job threshold.
func (m JobSimilarityMatch) Average() float64 {
	return (m.TitleScore + m.CompanyScore) / 2
}
