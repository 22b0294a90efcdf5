package errors

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_Nil(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_ContextErrors(t *testing.T) {
	if got := GetCode(MapDBError(context.DeadlineExceeded)); got != ErrCodeTimeout {
		t.Errorf("deadline exceeded mapped to %v", got)
	}
	if got := GetCode(MapDBError(context.Canceled)); got != ErrCodeCanceled {
		t.Errorf("canceled mapped to %v", got)
	}
}

func TestMapDBError_NoRows(t *testing.T) {
	if !IsNotFound(MapDBError(pgx.ErrNoRows)) {
		t.Error("pgx.ErrNoRows should map to NotFound")
	}
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name      string
		pgErr     *pgconn.PgError
		wantField string
	}{
		{
			name: "column name metadata",
			pgErr: &pgconn.PgError{
				Code:       pgerrcode.UniqueViolation,
				ColumnName: "username",
			},
			wantField: "username",
		},
		{
			name: "field parsed from detail",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: "Key (username)=(recruiter) already exists.",
			},
			wantField: "username",
		},
		{
			name:      "no metadata at all",
			pgErr:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsConflict(err) {
				t.Fatalf("want Conflict, got %v", GetCode(err))
			}
			if got := GetField(err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantMessage string
	}{
		{
			name: "missing parent on insert",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (candidate_id)=(99) is not present in table "candidates".`,
			},
			wantMessage: "referenced candidate does not exist",
		},
		{
			name: "parent still referenced on delete",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (id)=(5) is still referenced from table "applications".`,
			},
			wantMessage: "in use by application",
		},
		{
			name: "table metadata fallback",
			pgErr: &pgconn.PgError{
				Code:      pgerrcode.ForeignKeyViolation,
				TableName: "jobs",
			},
			wantMessage: "in use by job",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsForeignKey(err) {
				t.Fatalf("want ForeignKey, got %v", GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("message %q does not contain %q", err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestMapDBError_InputViolations(t *testing.T) {
	notNull := MapDBError(&pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		ColumnName: "status",
	})
	if !IsValidation(notNull) || GetField(notNull) != "status" {
		t.Errorf("not-null violation: code=%v field=%q", GetCode(notNull), GetField(notNull))
	}

	check := MapDBError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
	if !IsValidation(check) {
		t.Errorf("check violation: code=%v", GetCode(check))
	}
}

func TestMapDBError_Passthrough(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")
	if got := MapDBError(plain); got != plain {
		t.Errorf("unrecognized errors should pass through, got %v", got)
	}

	unhandled := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	if !IsInternal(unhandled) {
		t.Errorf("unhandled pg errors map to Internal, got %v", GetCode(unhandled))
	}
}
