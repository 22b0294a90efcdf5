package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64    { return &v }
func stringPtr(v string) *string { return &v }

func TestApplicationStatus_Valid(t *testing.T) {
	valid := []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusInterviewScheduled,
		ApplicationStatusQualified,
		ApplicationStatusRejected,
		ApplicationStatusOffer,
		ApplicationStatusJoined,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	invalid := []ApplicationStatus{"", "applied", "Screening", "Hired", "interview scheduled"}
	for _, s := range invalid {
		assert.False(t, s.Valid(), "expected %q to be invalid", s)
	}
}

func TestApplicationPayload_CandidateRef(t *testing.T) {
	tests := []struct {
		name    string
		payload ApplicationPayload
		kind    RefKind
	}{
		{
			name:    "explicit id wins over name",
			payload: ApplicationPayload{CandidateID: int64Ptr(7), CandidateName: stringPtr("Asha Rao")},
			kind:    RefByID,
		},
		{
			name:    "name only",
			payload: ApplicationPayload{CandidateName: stringPtr("Asha Rao")},
			kind:    RefByText,
		},
		{
			name:    "blank name is unspecified",
			payload: ApplicationPayload{CandidateName: stringPtr("   ")},
			kind:    RefUnspecified,
		},
		{
			name:    "empty payload",
			payload: ApplicationPayload{},
			kind:    RefUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := tt.payload.CandidateRef()
			assert.Equal(t, tt.kind, ref.Kind())
		})
	}
}

func TestApplicationPayload_JobRef(t *testing.T) {
	ref := (&ApplicationPayload{JobID: int64Ptr(3)}).JobRef()
	assert.Equal(t, RefByID, ref.Kind())
	assert.Equal(t, int64(3), ref.ID())

	ref = (&ApplicationPayload{JobTitle: stringPtr("Backend Engineer"), Company: stringPtr("Acme")}).JobRef()
	require.Equal(t, RefByText, ref.Kind())
	assert.True(t, ref.Complete())

	// Half a composite key is still a text reference, just not a complete one.
	ref = (&ApplicationPayload{JobTitle: stringPtr("Backend Engineer")}).JobRef()
	require.Equal(t, RefByText, ref.Kind())
	assert.False(t, ref.Complete())

	ref = (&ApplicationPayload{}).JobRef()
	assert.Equal(t, RefUnspecified, ref.Kind())
}

func TestApplicationPayload_Fields(t *testing.T) {
	p := ApplicationPayload{
		CandidateName: stringPtr("resolution input, not a column"),
		Status:        stringPtr("Applied"),
		Comments:      stringPtr("note"),
	}

	assert.Equal(t, []ApplicationField{FieldStatus, FieldComments}, p.Fields())
	assert.Empty(t, (&ApplicationPayload{}).Fields())
}

func TestApplicationPayload_StatusValue(t *testing.T) {
	_, ok := (&ApplicationPayload{}).StatusValue()
	assert.False(t, ok)

	st, ok := (&ApplicationPayload{Status: stringPtr(" Offer ")}).StatusValue()
	require.True(t, ok)
	assert.Equal(t, ApplicationStatusOffer, st)
}

func TestApplicationUpdate_Empty(t *testing.T) {
	assert.True(t, (&ApplicationUpdate{}).Empty())

	status := ApplicationStatusJoined
	assert.False(t, (&ApplicationUpdate{Status: &status}).Empty())
	assert.False(t, (&ApplicationUpdate{CandidateID: int64Ptr(1)}).Empty())
}

func TestJobSimilarityMatch_Average(t *testing.T) {
	m := JobSimilarityMatch{TitleScore: 0.8, CompanyScore: 0.4}
	assert.InDelta(t, 0.6, m.Average(), 1e-9)
}
