package model

import (
	"errors"
	"strings"
	"time"
)

// CandidateStatus is the candidate's standalone pipeline stage, distinct from
// the per-application status enum.
type CandidateStatus string

const (
	CandidateStatusApplied   CandidateStatus = "Applied"
	CandidateStatusScreening CandidateStatus = "Screening"
	CandidateStatusInterview CandidateStatus = "Interview"
	CandidateStatusSelected  CandidateStatus = "Selected"
	CandidateStatusRejected  CandidateStatus = "Rejected"
	CandidateStatusJoined    CandidateStatus = "Joined"
)

// Valid reports whether the status is a supported candidate stage.
func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusApplied, CandidateStatusScreening, CandidateStatusInterview,
		CandidateStatusSelected, CandidateStatusRejected, CandidateStatusJoined:
		return true
	default:
		return false
	}
}

// MapCandidateStatus normalizes loose UI status terms onto the enum. Unknown
// or empty input maps to Applied.
func MapCandidateStatus(v string) CandidateStatus {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "new", "created", "applied":
		return CandidateStatusApplied
	case "contacted", "screened", "screening":
		return CandidateStatusScreening
	case "interview", "interviewed", "interviewing":
		return CandidateStatusInterview
	case "selected", "offer", "offered":
		return CandidateStatusSelected
	case "rejected", "declined":
		return CandidateStatusRejected
	case "joined", "hired":
		return CandidateStatusJoined
	}
	// Fall back to a capitalized literal when it happens to be a valid stage.
	if s := CandidateStatus(capitalizeWord(v)); s.Valid() {
		return s
	}
	return CandidateStatusApplied
}

func capitalizeWord(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

// Candidate is a person in the recruiting pipeline. Applications reference
// candidates by id and never own them.
type Candidate struct {
	ID              int64      `json:"id"                        db:"id"`
	JobPosition     *string    `json:"job_position"              db:"job_position"`
	Company         *string    `json:"company"                   db:"company"`
	FullName        string     `json:"full_name"                 db:"full_name"`
	FathersName     *string    `json:"fathers_name"              db:"fathers_name"`
	Email           *string    `json:"email"                     db:"email_address"`
	Phone           *string    `json:"phone"                     db:"phone_number"`
	DateOfBirth     *time.Time `json:"date_of_birth"             db:"date_of_birth"`
	Gender          *string    `json:"gender"                    db:"gender"`
	City            *string    `json:"city"                      db:"city"`
	Languages       []string   `json:"select_languages"          db:"select_languages"`
	Education       *string    `json:"educational_qualification" db:"educational_qualification"`
	WorkExperience  int        `json:"work_experience"           db:"work_experience"`
	AdditionalMos   int        `json:"additional_months"         db:"additional_months"`
	Skills          *string    `json:"technical_professional_skills" db:"technical_professional_skills"`
	EmploymentTypes []string   `json:"preferred_employment_types" db:"preferred_employment_types"`
	WorkType        *string    `json:"preferred_work_types"      db:"preferred_work_types"`
	Source          *string    `json:"source"                    db:"source"`
	Status          string     `json:"status"                    db:"status"`
	Notes           *string    `json:"notes"                     db:"notes"`
	CreatedAt       *time.Time `json:"created_at"                db:"created_at"`
}

// CandidateListOptions selects one page of candidates. Zero values fall back
// to the first page with the default size.
type CandidateListOptions struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

const (
	DefaultCandidatePageSize = 25
	MaxCandidatePageSize     = 200
)

// Sanitize clamps paging values into their allowed ranges.
func (o *CandidateListOptions) Sanitize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultCandidatePageSize
	}
	if o.PageSize > MaxCandidatePageSize {
		o.PageSize = MaxCandidatePageSize
	}
	o.Status = strings.TrimSpace(o.Status)
	o.Search = strings.TrimSpace(o.Search)
}

// Offset converts the page number to a row offset.
func (o *CandidateListOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// CandidatePage is one page of the candidate list plus paging metadata.
type CandidatePage struct {
	Items    []*Candidate `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int          `json:"total"`
}

// CandidatePayload is the inbound candidate body shared by create and update.
// Nil pointers are treated as "not supplied".
type CandidatePayload struct {
	JobPosition     *string  `json:"job_position,omitempty"`
	Company         *string  `json:"company,omitempty"`
	FullName        *string  `json:"full_name,omitempty"`
	FathersName     *string  `json:"fathers_name,omitempty"`
	Email           *string  `json:"email_address,omitempty"`
	Phone           *string  `json:"phone_number,omitempty"`
	DateOfBirth     *string  `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Gender          *string  `json:"gender,omitempty"`
	City            *string  `json:"city,omitempty"`
	Languages       []string `json:"select_languages,omitempty"`
	Education       *string  `json:"educational_qualification,omitempty"`
	WorkExperience  *int     `json:"work_experience,omitempty"`
	AdditionalMos   *int     `json:"additional_months,omitempty"`
	Skills          *string  `json:"technical_professional_skills,omitempty"`
	EmploymentTypes []string `json:"preferred_employment_types,omitempty"`
	WorkType        *string  `json:"preferred_work_types,omitempty"`
	Source          *string  `json:"source,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// Normalize cleans list fields and experience counters in place.
func (p *CandidatePayload) Normalize() {
	p.Languages = cleanList(p.Languages)
	p.EmploymentTypes = cleanList(p.EmploymentTypes)
	if p.WorkExperience != nil && *p.WorkExperience < 0 {
		*p.WorkExperience = 0
	}
}

// Validate checks value ranges common to create and update.
func (p *CandidatePayload) Validate() error {
	if p.WorkExperience != nil && *p.WorkExperience < 0 {
		return errors.New("work_experience must be >= 0")
	}
	if p.AdditionalMos != nil && (*p.AdditionalMos < 0 || *p.AdditionalMos > 11) {
		return errors.New("additional_months must be 0..11")
	}
	return nil
}

// candidateRequiredFields mirrors the frontend's required-field validation on
// candidate creation.
var candidateRequiredFields = []struct {
	name    string
	present func(*CandidatePayload) bool
}{
	{"job_position", func(p *CandidatePayload) bool { return hasText(p.JobPosition) }},
	{"full_name", func(p *CandidatePayload) bool { return hasText(p.FullName) }},
	{"fathers_name", func(p *CandidatePayload) bool { return hasText(p.FathersName) }},
	{"email_address", func(p *CandidatePayload) bool { return hasText(p.Email) }},
	{"phone_number", func(p *CandidatePayload) bool { return hasText(p.Phone) }},
	{"date_of_birth", func(p *CandidatePayload) bool { return hasText(p.DateOfBirth) }},
	{"gender", func(p *CandidatePayload) bool { return hasText(p.Gender) }},
	{"preferred_work_types", func(p *CandidatePayload) bool { return hasText(p.WorkType) }},
}

// MissingRequired returns the names of required create fields the payload
// does not carry.
func (p *CandidatePayload) MissingRequired() []string {
	var missing []string
	for _, f := range candidateRequiredFields {
		if !f.present(p) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func cleanList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
