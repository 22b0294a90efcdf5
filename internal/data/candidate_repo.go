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

// CandidateRepo provides database operations for candidates. It also serves
// as the candidate directory for reference resolution.
type CandidateRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCandidateRepo creates a CandidateRepo over the given pool.
func NewCandidateRepo(db *sql.DB) *CandidateRepo {
	return &CandidateRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewCandidateRepoWithTimeProvider creates a CandidateRepo with a custom
// clock, useful for testing.
func NewCandidateRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CandidateRepo {
	return &CandidateRepo{DB: db, timeProvider: tp}
}

const candidateColumns = `
	id, job_position, company, full_name, fathers_name, email_address,
	phone_number, date_of_birth, gender, city, select_languages,
	educational_qualification, work_experience, additional_months,
	technical_professional_skills, preferred_employment_types,
	preferred_work_types, source, status, notes, created_at`

// Create inserts a candidate and returns the stored row.
func (r *CandidateRepo) Create(ctx context.Context, payload *model.CandidatePayload) (*model.Candidate, error) {
	if payload == nil {
		return nil, errors.New("candidate payload is required")
	}

	status := model.MapCandidateStatus(derefString(payload.Status))
	createdAt := r.timeProvider.Now()

	var out model.Candidate
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO candidates
				(job_position, company, full_name, fathers_name, email_address,
				 phone_number, date_of_birth, gender, city, select_languages,
				 educational_qualification, work_experience, additional_months,
				 technical_professional_skills, preferred_employment_types,
				 preferred_work_types, source, status, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10,
			        $11, COALESCE($12, 0), COALESCE($13, 0), $14, $15,
			        $16, $17, $18, $19, $20)
			RETURNING `+candidateColumns,
			payload.JobPosition, payload.Company, payload.FullName,
			payload.FathersName, payload.Email, payload.Phone,
			payload.DateOfBirth, payload.Gender, payload.City,
			payload.Languages, payload.Education, payload.WorkExperience,
			payload.AdditionalMos, payload.Skills, payload.EmploymentTypes,
			payload.WorkType, payload.Source, string(status), payload.Notes,
			createdAt)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Candidate])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a candidate by id.
func (r *CandidateRepo) GetByID(ctx context.Context, id int64) (*model.Candidate, error) {
	var out model.Candidate
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Candidate])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("get candidate by id: %w", err)
	}
	return &out, nil
}

// List returns one page of candidates, newest first, with the total count
// for the same filters.
func (r *CandidateRepo) List(ctx context.Context, opts model.CandidateListOptions) (*model.CandidatePage, error) {
	opts.Sanitize()

	where, args := candidateListFilter(opts)

	var (
		items []model.Candidate
		total int
	)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx,
			`SELECT count(*) FROM candidates`+where, args...).Scan(&total); err != nil {
			return err
		}

		pageArgs := append(args, opts.PageSize, opts.Offset())
		rows, err := conn.Query(ctx, `SELECT `+candidateColumns+`
			FROM candidates`+where+fmt.Sprintf(`
			ORDER BY created_at DESC NULLS LAST, id DESC
			LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2), pageArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Candidate])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	page := &model.CandidatePage{
		Items:    make([]*model.Candidate, len(items)),
		Page:     opts.Page,
		PageSize: opts.PageSize,
		Total:    total,
	}
	for i := range items {
		page.Items[i] = &items[i]
	}
	return page, nil
}

func candidateListFilter(opts model.CandidateListOptions) (string, []any) {
	var clauses []string
	var args []any
	if opts.Status != "" {
		args = append(args, opts.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(full_name ILIKE $%d OR email_address ILIKE $%d OR phone_number ILIKE $%d)", n, n, n))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Update applies the non-nil payload fields and returns the stored row.
// Returns ErrCandidateNotFound when no row matches.
func (r *CandidateRepo) Update(ctx context.Context, id int64, payload *model.CandidatePayload) (*model.Candidate, error) {
	if payload == nil {
		return nil, errors.New("candidate payload is required")
	}

	set, args := buildCandidateUpdate(payload)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	var out model.Candidate
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"UPDATE candidates SET "+strings.Join(set, ", ")+
				fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args))+candidateColumns,
			args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Candidate])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return &out, nil
}

func buildCandidateUpdate(payload *model.CandidatePayload) ([]string, []any) {
	set := make([]string, 0, 19)
	args := make([]any, 0, 19)
	add := func(expr string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf(expr, len(args)))
	}

	if payload.JobPosition != nil {
		add("job_position = $%d", *payload.JobPosition)
	}
	if payload.Company != nil {
		add("company = $%d", *payload.Company)
	}
	if payload.FullName != nil {
		add("full_name = $%d", *payload.FullName)
	}
	if payload.FathersName != nil {
		add("fathers_name = $%d", *payload.FathersName)
	}
	if payload.Email != nil {
		add("email_address = $%d", *payload.Email)
	}
	if payload.Phone != nil {
		add("phone_number = $%d", *payload.Phone)
	}
	if payload.DateOfBirth != nil {
		add("date_of_birth = $%d::date", *payload.DateOfBirth)
	}
	if payload.Gender != nil {
		add("gender = $%d", *payload.Gender)
	}
	if payload.City != nil {
		add("city = $%d", *payload.City)
	}
	if payload.Languages != nil {
		add("select_languages = $%d", payload.Languages)
	}
	if payload.Education != nil {
		add("educational_qualification = $%d", *payload.Education)
	}
	if payload.WorkExperience != nil {
		add("work_experience = $%d", *payload.WorkExperience)
	}
	if payload.AdditionalMos != nil {
		add("additional_months = $%d", *payload.AdditionalMos)
	}
	if payload.Skills != nil {
		add("technical_professional_skills = $%d", *payload.Skills)
	}
	if payload.EmploymentTypes != nil {
		add("preferred_employment_types = $%d", payload.EmploymentTypes)
	}
	if payload.WorkType != nil {
		add("preferred_work_types = $%d", *payload.WorkType)
	}
	if payload.Source != nil {
		add("source = $%d", *payload.Source)
	}
	if payload.Status != nil {
		add("status = $%d", string(model.MapCandidateStatus(*payload.Status)))
	}
	if payload.Notes != nil {
		add("notes = $%d", *payload.Notes)
	}
	return set, args
}

// UpdateStatus sets only the pipeline stage and reports whether a row
// matched. The UI-term to enum mapping happens in the service layer.
func (r *CandidateRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE candidates SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("update candidate status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update candidate status rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a candidate and reports whether one existed.
func (r *CandidateRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete candidate: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete candidate rows affected: %w", err)
	}
	return affected > 0, nil
}

// FindIDByName matches the exact stored full_name, case sensitively.
func (r *CandidateRepo) FindIDByName(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM candidates
		WHERE full_name = $1
		ORDER BY id ASC
		LIMIT 1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find candidate by name: %w", err)
	}
	return id, true, nil
}

// BestNameMatch returns the highest-scoring trigram match for name, or nil
// when there are no rows to score. Requires pg_trgm.
func (r *CandidateRepo) BestNameMatch(ctx context.Context, name string) (*model.SimilarityMatch, error) {
	var match model.SimilarityMatch
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, similarity(lower(full_name), lower($1)) AS score
		FROM candidates
		WHERE full_name IS NOT NULL
		ORDER BY score DESC, id ASC
		LIMIT 1`, name).Scan(&match.ID, &match.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("match candidate by name: %w", err)
	}
	return &match, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
