//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// ApplicationStatus is the pipeline stage of an application.
type ApplicationStatus string

const (
	ApplicationStatusApplied            ApplicationStatus = "Applied"
	ApplicationStatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	ApplicationStatusQualified          ApplicationStatus = "Qualified"
	ApplicationStatusRejected           ApplicationStatus = "Rejected"
	ApplicationStatusOffer              ApplicationStatus = "Offer"
	ApplicationStatusJoined             ApplicationStatus = "Joined"
)

// Valid reports whether the status is one of the closed set accepted on the wire.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusInterviewScheduled,
		ApplicationStatusQualified, ApplicationStatusRejected,
		ApplicationStatusOffer, ApplicationStatusJoined:
		return true
	default:
		return false
	}
}

// ApplicationRecord is a row of the joined applications view: the application
// columns plus the referenced candidate's display name and the job's
// title/company. Dates arrive pre-formatted by the store (YYYY-MM-DD for
// applied_on, ISO-8601 with offset for interview).
type ApplicationRecord struct {
	ID            int64   `json:"id"             db:"id"`
	CandidateID   *int64  `json:"candidate_id"   db:"candidate_id"`
	CandidateName *string `json:"candidate_name" db:"candidate_name"`
	JobID         *int64  `json:"job_id"         db:"job_id"`
	JobTitle      *string `json:"job_title"      db:"job_title"`
	Company       *string `json:"company"        db:"company"`
	Status        string  `json:"status"         db:"status"`
	SourcedBy     *string `json:"sourced_by"     db:"sourced_by"`
	SourcedFrom   *string `json:"sourced_from"   db:"sourced_from"`
	AssignedTo    *string `json:"assigned_to"    db:"assigned_to"`
	AppliedOn     *string `json:"applied_on"     db:"applied_on"`
	Interview     *string `json:"interview"      db:"interview"`
	Comments      *string `json:"comments"       db:"comments"`
}

// ApplicationPayload is the inbound application body shared by create and
// update. Every field is optional on the wire; callers either pass stable ids
// (candidate_id/job_id) or free text (candidate_name, job_title+company) and
// leave resolution to the service. A nil pointer means the field was omitted
// or explicitly null; both are treated as "not supplied", matching the
// partial-update contract.
type ApplicationPayload struct {
	CandidateID   *int64  `json:"candidate_id,omitempty"`
	CandidateName *string `json:"candidate_name,omitempty"`

	JobID    *int64  `json:"job_id,omitempty"`
	JobTitle *string `json:"job_title,omitempty"`
	Company  *string `json:"company,omitempty"`

	Status      *string `json:"status,omitempty"`
	SourcedBy   *string `json:"sourced_by,omitempty"`
	SourcedFrom *string `json:"sourced_from,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`

	AppliedOn *string `json:"applied_on,omitempty"` // YYYY-MM-DD
	Interview *string `json:"interview,omitempty"`  // ISO timestamp
	Comments  *string `json:"comments,omitempty"`
}

// StatusValue returns the trimmed status and whether one was supplied.
func (p *ApplicationPayload) StatusValue() (ApplicationStatus, bool) {
	if p.Status == nil {
		return "", false
	}
	return ApplicationStatus(strings.TrimSpace(*p.Status)), true
}

// CandidateRef builds the candidate reference carried by this payload.
func (p *ApplicationPayload) CandidateRef() CandidateRef {
	if p.CandidateID != nil {
		return CandidateByID(*p.CandidateID)
	}
	if p.CandidateName != nil && strings.TrimSpace(*p.CandidateName) != "" {
		return CandidateByName(*p.CandidateName)
	}
	return CandidateRef{}
}

// JobRef builds the job reference carried by this payload.
func (p *ApplicationPayload) JobRef() JobRef {
	if p.JobID != nil {
		return JobByID(*p.JobID)
	}
	title, company := "", ""
	if p.JobTitle != nil {
		title = strings.TrimSpace(*p.JobTitle)
	}
	if p.Company != nil {
		company = strings.TrimSpace(*p.Company)
	}
	if title != "" || company != "" {
		return JobByText(title, company)
	}
	return JobRef{}
}

// ApplicationField names a column of the applications table that requests may
// set. The normalizer reports which fields a payload actually carries so that
// updates touch only those columns.
type ApplicationField string

const (
	FieldCandidateID ApplicationField = "candidate_id"
	FieldJobID       ApplicationField = "job_id"
	FieldStatus      ApplicationField = "status"
	FieldSourcedBy   ApplicationField = "sourced_by"
	FieldSourcedFrom ApplicationField = "sourced_from"
	FieldAssignedTo  ApplicationField = "assigned_to"
	FieldAppliedOn   ApplicationField = "applied_on"
	FieldInterview   ApplicationField = "interview"
	FieldComments    ApplicationField = "comments"
)

// Fields returns the persistable fields present in the payload, in the fixed
// column order above. Name/title text fields are not included; they only feed
// resolution.
func (p *ApplicationPayload) Fields() []ApplicationField {
	fields := make([]ApplicationField, 0, 9)
	if p.CandidateID != nil {
		fields = append(fields, FieldCandidateID)
	}
	if p.JobID != nil {
		fields = append(fields, FieldJobID)
	}
	if p.Status != nil {
		fields = append(fields, FieldStatus)
	}
	if p.SourcedBy != nil {
		fields = append(fields, FieldSourcedBy)
	}
	if p.SourcedFrom != nil {
		fields = append(fields, FieldSourcedFrom)
	}
	if p.AssignedTo != nil {
		fields = append(fields, FieldAssignedTo)
	}
	if p.AppliedOn != nil {
		fields = append(fields, FieldAppliedOn)
	}
	if p.Interview != nil {
		fields = append(fields, FieldInterview)
	}
	if p.Comments != nil {
		fields = append(fields, FieldComments)
	}
	return fields
}

// ApplicationRow is the canonical column set inserted into the applications
// table once references are resolved.
type ApplicationRow struct {
	CandidateID int64
	JobID       int64
	Status      ApplicationStatus
	SourcedBy   *string
	SourcedFrom *string
	AssignedTo  *string
	AppliedOn   *string
	Interview   *string
	Comments    *string
}

// ApplicationUpdate carries the columns to change in a partial update. Nil
// pointers leave the stored value untouched.
type ApplicationUpdate struct {
	CandidateID *int64
	JobID       *int64
	Status      *ApplicationStatus
	SourcedBy   *string
	SourcedFrom *string
	AssignedTo  *string
	AppliedOn   *string
	Interview   *string
	Comments    *string
}

// Empty reports whether the update would change nothing.
func (u *ApplicationUpdate) Empty() bool {
	return u.CandidateID == nil && u.JobID == nil && u.Status == nil &&
		u.SourcedBy == nil && u.SourcedFrom == nil && u.AssignedTo == nil &&
		u.AppliedOn == nil && u.Interview == nil && u.Comments == nil
}

// CandidateOption is a dropdown entry for candidate selects.
type CandidateOption struct {
	ID       int64  `json:"id"        db:"id"`
	FullName string `json:"full_name" db:"full_name"`
}

// JobOption is a dropdown entry for job selects.
type JobOption struct {
	ID       int64  `json:"id"        db:"id"`
	JobTitle string `json:"job_title" db:"job_title"`
	Company  string `json:"company"   db:"company"`
}

// ReferenceOptions bundles the two dropdown lists served to the UI.
type ReferenceOptions struct {
	Candidates []*CandidateOption `json:"candidates"`
	Jobs       []*JobOption       `json:"jobs"`
}
