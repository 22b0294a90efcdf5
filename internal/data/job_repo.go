package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dhi-labs/recruit-api/internal/data/pgxutil"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
)

// JobRepo provides database operations for job openings. It also serves as
// the job directory for reference resolution.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a JobRepo over the given pool.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a JobRepo with a custom clock.
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

const jobColumns = `
	id, job_title, company, openings, type, work_mode, salary_min,
	salary_max, status, urgency, category, experience, age_min, age_max,
	address, job_description, required_skills, preferred_skills,
	languages_required, created_at`

// Create inserts a job and returns the stored row. Status defaults to
// Action when the payload omits it.
func (r *JobRepo) Create(ctx context.Context, payload *model.JobPayload) (*model.Job, error) {
	if payload == nil {
		return nil, errors.New("job payload is required")
	}

	status := string(model.JobStatusAction)
	if payload.Status != nil {
		status = *payload.Status
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs
				(job_title, company, openings, type, work_mode, salary_min,
				 salary_max, status, urgency, category, experience, age_min,
				 age_max, address, job_description, required_skills,
				 preferred_skills, languages_required, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			        $11, $12, $13, $14, $15, $16, $17, $18, $19)
			RETURNING `+jobColumns,
			payload.JobTitle, payload.Company, payload.Openings, payload.Type,
			payload.WorkMode, payload.SalaryMin, payload.SalaryMax, status,
			payload.Urgency, payload.Category, payload.Experience,
			payload.AgeMin, payload.AgeMax, payload.Address,
			payload.Description, payload.RequiredSkills,
			payload.PreferredSkill, payload.Languages, r.timeProvider.Now())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a job by id.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}
	return &out, nil
}

// List retrieves jobs with pagination, newest first.
func (r *JobRepo) List(ctx context.Context, limit, offset int) ([]*model.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var jobs []model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+`
			FROM jobs
			ORDER BY created_at DESC NULLS LAST, id DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		jobs, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	result := make([]*model.Job, len(jobs))
	for i := range jobs {
		result[i] = &jobs[i]
	}
	return result, nil
}

// Update replaces the mutable job columns with the payload values. Omitted
// optional fields become NULL; the payload must carry title and company.
func (r *JobRepo) Update(ctx context.Context, id int64, payload *model.JobPayload) (*model.Job, error) {
	if payload == nil {
		return nil, errors.New("job payload is required")
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE jobs SET
				job_title = $1, company = $2, openings = $3, type = $4,
				work_mode = $5, salary_min = $6, salary_max = $7,
				status = COALESCE($8, status), urgency = $9, category = $10,
				experience = $11, age_min = $12, age_max = $13, address = $14,
				job_description = $15, required_skills = $16,
				preferred_skills = $17, languages_required = $18
			WHERE id = $19
			RETURNING `+jobColumns,
			payload.JobTitle, payload.Company, payload.Openings, payload.Type,
			payload.WorkMode, payload.SalaryMin, payload.SalaryMax,
			payload.Status, payload.Urgency, payload.Category,
			payload.Experience, payload.AgeMin, payload.AgeMax,
			payload.Address, payload.Description, payload.RequiredSkills,
			payload.PreferredSkill, payload.Languages, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &out, nil
}

// UpdateStatus sets only the posting status and reports whether a row
// matched. Status validation happens in the service layer.
func (r *JobRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("update job status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update job status rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a job and reports whether one existed.
func (r *JobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete job rows affected: %w", err)
	}
	return affected > 0, nil
}

// FindIDByTitleCompany matches the exact stored title and company pair,
// case sensitively.
func (r *JobRepo) FindIDByTitleCompany(ctx context.Context, title, company string) (int64, bool, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM jobs
		WHERE job_title = $1 AND company = $2
		ORDER BY id ASC
		LIMIT 1`, title, company).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find job by title and company: %w", err)
	}
	return id, true, nil
}

// BestTitleCompanyMatch returns the row whose combined title and company
// similarity scores highest, or nil when there are no rows to score.
// Requires pg_trgm.
func (r *JobRepo) BestTitleCompanyMatch(ctx context.Context, title, company string) (*model.JobSimilarityMatch, error) {
	var match model.JobSimilarityMatch
	err := r.DB.QueryRowContext(ctx, `
		SELECT id,
		       similarity(lower(job_title), lower($1)) AS title_score,
		       similarity(lower(company), lower($2)) AS company_score
		FROM jobs
		WHERE job_title IS NOT NULL AND company IS NOT NULL
		ORDER BY similarity(lower(job_title), lower($1))
		       + similarity(lower(company), lower($2)) DESC, id ASC
		LIMIT 1`, title, company).Scan(&match.ID, &match.TitleScore, &match.CompanyScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("match job by title and company: %w", err)
	}
	return &match, nil
}
