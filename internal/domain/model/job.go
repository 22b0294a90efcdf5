package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// JobStatus is the posting's lifecycle state.
type JobStatus string

const (
	JobStatusAction JobStatus = "Action"
	JobStatusHold   JobStatus = "Hold"
	JobStatusClosed JobStatus = "Closed"
)

// Valid reports whether the status is a supported posting state.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusAction, JobStatusHold, JobStatusClosed:
		return true
	default:
		return false
	}
}

// Job is a posting. The (job_title, company) pair is its natural key when no
// id is supplied.
type Job struct {
	ID             int64      `json:"id"                 db:"id"`
	JobTitle       string     `json:"job_title"          db:"job_title"`
	Company        string     `json:"company"            db:"company"`
	Openings       *int       `json:"openings"           db:"openings"`
	Type           *string    `json:"type"               db:"type"`
	WorkMode       *string    `json:"work_mode"          db:"work_mode"`
	SalaryMin      *int64     `json:"salary_min"         db:"salary_min"`
	SalaryMax      *int64     `json:"salary_max"         db:"salary_max"`
	Status         *string    `json:"status"             db:"status"`
	Urgency        *string    `json:"urgency"            db:"urgency"`
	Category       *string    `json:"category"           db:"category"`
	Experience     *string    `json:"experience"         db:"experience"`
	AgeMin         *int       `json:"age_min"            db:"age_min"`
	AgeMax         *int       `json:"age_max"            db:"age_max"`
	Address        *string    `json:"address"            db:"address"`
	Description    *string    `json:"job_description"    db:"job_description"`
	RequiredSkills *string    `json:"required_skills"    db:"required_skills"`
	PreferredSkill *string    `json:"preferred_skills"   db:"preferred_skills"`
	Languages      *string    `json:"languages_required" db:"languages_required"`
	CreatedAt      *time.Time `json:"created_at"         db:"created_at"`
}

// JobView is the display shape served to the UI, with the derived range
// strings the frontend expects.
type JobView struct {
	Job
	SalaryRange *string `json:"salary_range"`
	AgeRange    *string `json:"age_range"`
	PostedDate  *string `json:"posted_date"`
}

// View derives the display-only fields from the stored row.
func (j *Job) View() *JobView {
	v := &JobView{Job: *j}

	if j.AgeMin != nil && j.AgeMax != nil {
		s := fmt.Sprintf("%d - %d", *j.AgeMin, *j.AgeMax)
		v.AgeRange = &s
	}

	// A one-sided salary renders as an open range; a full pair is shown as the
	// raw min/max columns instead.
	switch {
	case j.SalaryMin != nil && j.SalaryMax == nil:
		s := fmt.Sprintf("₹ %d+", *j.SalaryMin)
		v.SalaryRange = &s
	case j.SalaryMax != nil && j.SalaryMin == nil:
		s := fmt.Sprintf("Up to ₹ %d", *j.SalaryMax)
		v.SalaryRange = &s
	}

	if j.CreatedAt != nil {
		s := j.CreatedAt.Format(time.RFC3339)
		v.PostedDate = &s
	}
	return v
}

// JobPayload is the inbound job body shared by create and full update.
type JobPayload struct {
	JobTitle       *string `json:"job_title,omitempty"`
	Company        *string `json:"company,omitempty"`
	Openings       *int    `json:"openings,omitempty"`
	Type           *string `json:"type,omitempty"`
	WorkMode       *string `json:"work_mode,omitempty"`
	SalaryMin      *int64  `json:"salary_min,omitempty"`
	SalaryMax      *int64  `json:"salary_max,omitempty"`
	Status         *string `json:"status,omitempty"`
	Urgency        *string `json:"urgency,omitempty"`
	Category       *string `json:"category,omitempty"`
	Experience     *string `json:"experience,omitempty"`
	AgeMin         *int    `json:"age_min,omitempty"`
	AgeMax         *int    `json:"age_max,omitempty"`
	Address        *string `json:"address,omitempty"`
	Description    *string `json:"job_description,omitempty"`
	RequiredSkills *string `json:"required_skills,omitempty"`
	PreferredSkill *string `json:"preferred_skills,omitempty"`
	Languages      *string `json:"languages_required,omitempty"`
}

// Validate checks the payload for create and full update, where the natural
// key must always be present.
func (p *JobPayload) Validate() error {
	if !hasText(p.JobTitle) {
		return errors.New("missing job_title")
	}
	if !hasText(p.Company) {
		return errors.New("missing company")
	}
	if p.Status != nil {
		status := JobStatus(strings.TrimSpace(*p.Status))
		if !status.Valid() {
			return fmt.Errorf("invalid status %q", *p.Status)
		}
	}
	return nil
}
