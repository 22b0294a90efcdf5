package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dhi-labs/recruit-api/internal/data/pgxutil"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
)

const (
	// maxApplicationRows bounds the unpaged application list.
	maxApplicationRows = 1000
	// maxOptionRows bounds the dropdown option queries.
	maxOptionRows = 5000
)

// ApplicationRepo provides database operations for pipeline applications.
// Reads go through the joined applications view; writes hit the base table.
type ApplicationRepo struct {
	DB *sql.DB
}

// NewApplicationRepo creates an ApplicationRepo over the given pool.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db}
}

// applicationSelect formats dates at the edge so handlers can serve the rows
// untouched: applied_on as a plain date, interview as a timestamp with
// offset.
const applicationSelect = `
	SELECT id, candidate_id, candidate_name, job_id, job_title, company,
	       status, sourced_by, sourced_from, assigned_to,
	       to_char(applied_on, 'YYYY-MM-DD') AS applied_on,
	       to_char(interview, 'YYYY-MM-DD"T"HH24:MI:SSOF') AS interview,
	       comments
	FROM applications_view`

// List returns the newest applications first. Rows without an applied_on
// date sort last so fresh entries stay on top.
func (r *ApplicationRepo) List(ctx context.Context, limit int) ([]*model.ApplicationRecord, error) {
	if limit <= 0 || limit > maxApplicationRows {
		limit = maxApplicationRows
	}

	var records []model.ApplicationRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationSelect+`
			ORDER BY applied_on DESC NULLS LAST, id DESC
			LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		records, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ApplicationRecord])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	result := make([]*model.ApplicationRecord, len(records))
	for i := range records {
		result[i] = &records[i]
	}
	return result, nil
}

// GetByID returns one application row from the view.
func (r *ApplicationRepo) GetByID(ctx context.Context, id int64) (*model.ApplicationRecord, error) {
	var record model.ApplicationRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationSelect+` WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		record, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ApplicationRecord])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("get application by id: %w", err)
	}
	return &record, nil
}

// Insert writes a resolved application row and returns the new id.
func (r *ApplicationRepo) Insert(ctx context.Context, row *model.ApplicationRow) (int64, error) {
	if row == nil {
		return 0, errors.New("application row is required")
	}

	var id int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO applications
				(candidate_id, job_id, status, sourced_by, sourced_from,
				 assigned_to, applied_on, interview, comments)
			VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::timestamptz, $9)
			RETURNING id
		`, row.CandidateID, row.JobID, string(row.Status), row.SourcedBy,
			row.SourcedFrom, row.AssignedTo, row.AppliedOn, row.Interview,
			row.Comments).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}
	return id, nil
}

// Update applies the non-nil fields of upd and reports whether a row
// matched. Callers must not pass an empty update.
func (r *ApplicationRepo) Update(ctx context.Context, id int64, upd *model.ApplicationUpdate) (bool, error) {
	if upd == nil || upd.Empty() {
		return false, errors.New("application update has no fields")
	}

	set, args := buildApplicationUpdate(upd)
	args = append(args, id)
	query := "UPDATE applications SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d", len(args))

	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("update application: %w", err)
	}
	return affected > 0, nil
}

// buildApplicationUpdate renders SET clauses with positional placeholders in
// the fixed column order.
func buildApplicationUpdate(upd *model.ApplicationUpdate) ([]string, []any) {
	set := make([]string, 0, 9)
	args := make([]any, 0, 9)
	add := func(expr string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf(expr, len(args)))
	}

	if upd.CandidateID != nil {
		add("candidate_id = $%d", *upd.CandidateID)
	}
	if upd.JobID != nil {
		add("job_id = $%d", *upd.JobID)
	}
	if upd.Status != nil {
		add("status = $%d", string(*upd.Status))
	}
	if upd.SourcedBy != nil {
		add("sourced_by = $%d", *upd.SourcedBy)
	}
	if upd.SourcedFrom != nil {
		add("sourced_from = $%d", *upd.SourcedFrom)
	}
	if upd.AssignedTo != nil {
		add("assigned_to = $%d", *upd.AssignedTo)
	}
	if upd.AppliedOn != nil {
		add("applied_on = $%d::date", *upd.AppliedOn)
	}
	if upd.Interview != nil {
		add("interview = $%d::timestamptz", *upd.Interview)
	}
	if upd.Comments != nil {
		add("comments = $%d", *upd.Comments)
	}
	return set, args
}

// Delete removes an application and reports whether one existed.
func (r *ApplicationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete application: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete application rows affected: %w", err)
	}
	return affected > 0, nil
}

// CandidateOptions lists candidates with a usable display name for dropdowns.
func (r *ApplicationRepo) CandidateOptions(ctx context.Context, limit int) ([]*model.CandidateOption, error) {
	if limit <= 0 || limit > maxOptionRows {
		limit = maxOptionRows
	}

	var options []model.CandidateOption
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, full_name
			FROM candidates
			WHERE full_name IS NOT NULL AND btrim(full_name) <> ''
			ORDER BY full_name ASC, id ASC
			LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		options, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CandidateOption])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list candidate options: %w", err)
	}

	result := make([]*model.CandidateOption, len(options))
	for i := range options {
		result[i] = &options[i]
	}
	return result, nil
}

// JobOptions lists jobs with a usable title and company for dropdowns.
func (r *ApplicationRepo) JobOptions(ctx context.Context, limit int) ([]*model.JobOption, error) {
	if limit <= 0 || limit > maxOptionRows {
		limit = maxOptionRows
	}

	var options []model.JobOption
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, job_title, company
			FROM jobs
			WHERE job_title IS NOT NULL AND btrim(job_title) <> ''
			  AND company IS NOT NULL AND btrim(company) <> ''
			ORDER BY job_title ASC, id ASC
			LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		options, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobOption])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list job options: %w", err)
	}

	result := make([]*model.JobOption, len(options))
	for i := range options {
		result[i] = &options[i]
	}
	return result, nil
}
