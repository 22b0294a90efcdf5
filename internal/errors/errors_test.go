package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := NotFound("application 12 not found")
	if got := plain.Error(); got != "application 12 not found" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("connection reset")
	wrapped := Wrap(cause, ErrCodeInternal, "list applications")
	if got := wrapped.Error(); got != "list applications: connection reset" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, ErrCodeInternal, "query failed")
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}

	// AppError identity survives further fmt wrapping.
	outer := fmt.Errorf("create application: %w", wrapped)
	if !IsInternal(outer) {
		t.Error("IsInternal should see through fmt.Errorf wrapping")
	}
}

func TestWrap_NilError(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "ignored") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
	if Wrapf(nil, ErrCodeInternal, "ignored %d", 1) != nil {
		t.Error("Wrapf(nil, ...) should return nil")
	}
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		err  error
		pred func(error) bool
		want bool
	}{
		{NotFoundf("candidate %d not found", 3), IsNotFound, true},
		{Conflict("username taken"), IsConflict, true},
		{Validation("status is required"), IsValidation, true},
		{ForeignKey("candidate in use"), IsForeignKey, true},
		{Unauthorized("invalid credentials"), IsUnauthorized, true},
		{Internal("oops"), IsInternal, true},
		{errors.New("plain"), IsNotFound, false},
		{nil, IsValidation, false},
	}

	for i, tt := range tests {
		if got := tt.pred(tt.err); got != tt.want {
			t.Errorf("case %d: predicate = %v, want %v", i, got, tt.want)
		}
	}
}

func TestGetCodeAndField(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	fieldErr := ValidationField("status", "invalid status")
	if GetCode(fieldErr) != ErrCodeValidation || GetField(fieldErr) != "status" {
		t.Errorf("unexpected code/field: %v / %q", GetCode(fieldErr), GetField(fieldErr))
	}
}
