package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/omparkhi/JobWeb/internal/domain"
)

const jobColumns = `
	j.id, j.company_id, j.title, j.description, j.requirements, j.location,
	j.experience_level, j.job_type, j.salary_range, j.skills,
	j.application_deadline, j.is_active, j.created_at, j.updated_at, j.version,
	cp.company_name, cp.logo_url, cp.location, cp.is_approved, cp.is_active
`

func scanJob(row interface{ Scan(...any) error }) (*domain.Job, error) {
	job := &domain.Job{}
	company := &domain.CompanyProfile{}

	var (
		skills      string
		salaryRange sql.NullString
		deadline    sql.NullTime
	)

	dst := []any{
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Requirements,
		&job.Location, &job.ExperienceLevel, &job.JobType, &salaryRange, &skills,
		&deadline, &job.IsActive, &job.CreatedAt, &job.UpdatedAt, &job.Version,
		&company.CompanyName, &company.LogoURL, &company.Location,
		&company.IsApproved, &company.IsActive,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	job.Skills = splitSkills(skills)
	job.SalaryRange = salaryRange.String
	if deadline.Valid {
		job.ApplicationDeadline = &deadline.Time
	}

	company.ID = job.CompanyID
	job.Company = company

	return job, nil
}

func (r *Repository) CreateJob(job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			company_id, title, description, requirements, location,
			experience_level, job_type, salary_range, skills, application_deadline
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, is_active, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var salaryRange sql.NullString
	if job.SalaryRange != "" {
		salaryRange = sql.NullString{String: job.SalaryRange, Valid: true}
	}
	var deadline sql.NullTime
	if job.ApplicationDeadline != nil {
		deadline = sql.NullTime{Time: *job.ApplicationDeadline, Valid: true}
	}

	args := []any{
		job.CompanyID, job.Title, job.Description, job.Requirements, job.Location,
		job.ExperienceLevel, job.JobType, salaryRange, joinSkills(job.Skills), deadline,
	}
	dst := []any{&job.ID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt, &job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) queryJobs(query string, args ...any) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// SearchJobs applies the optional filters on top of the implicit
// is_active = true predicate, newest first.
func (r *Repository) SearchJobs(filters domain.JobFilters) ([]*domain.Job, error) {
	where := []string{"j.is_active = true"}
	args := []any{}

	if filters.Title != "" {
		args = append(args, "%"+filters.Title+"%")
		where = append(where, fmt.Sprintf("j.title ILIKE $%d", len(args)))
	}
	if filters.Location != "" {
		args = append(args, "%"+filters.Location+"%")
		where = append(where, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filters.ExperienceLevel != "" {
		args = append(args, filters.ExperienceLevel)
		where = append(where, fmt.Sprintf("j.experience_level = $%d", len(args)))
	}
	if filters.JobType != "" {
		args = append(args, filters.JobType)
		where = append(where, fmt.Sprintf("j.job_type = $%d", len(args)))
	}

	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN company_profiles cp ON cp.id = j.company_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY j.created_at DESC
	`

	return r.queryJobs(query, args...)
}

// GetJobByID also loads the job's applications for the detail view. Inactive
// jobs remain fetchable here; only search filters them out.
func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN company_profiles cp ON cp.id = j.company_id
		WHERE j.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	job, err := scanJob(r.dbpool.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	applications, err := r.GetApplicationsByJob(id)
	if err != nil {
		return nil, err
	}
	job.Applications = applications

	return job, nil
}

func (r *Repository) GetJobsByCompany(companyID int64) ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN company_profiles cp ON cp.id = j.company_id
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC
	`
	return r.queryJobs(query, companyID)
}

// GetAllJobs is the administrative listing: no is_active filter.
func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN company_profiles cp ON cp.id = j.company_id
		ORDER BY j.created_at DESC
	`
	return r.queryJobs(query)
}

func (r *Repository) GetJobIDsByCompany(companyID int64) ([]int64, error) {
	query := `
		SELECT id FROM jobs WHERE company_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) UpdateJob(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET
			title = $1,
			description = $2,
			requirements = $3,
			location = $4,
			experience_level = $5,
			job_type = $6,
			salary_range = $7,
			skills = $8,
			application_deadline = $9,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var salaryRange sql.NullString
	if job.SalaryRange != "" {
		salaryRange = sql.NullString{String: job.SalaryRange, Valid: true}
	}
	var deadline sql.NullTime
	if job.ApplicationDeadline != nil {
		deadline = sql.NullTime{Time: *job.ApplicationDeadline, Valid: true}
	}

	args := []any{
		job.Title, job.Description, job.Requirements, job.Location,
		job.ExperienceLevel, job.JobType, salaryRange, joinSkills(job.Skills),
		deadline, job.ID, job.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.UpdatedAt, &job.Version); err != nil {
		return err
	}

	return nil
}

// DeactivateJob is the company-facing delete: the row stays so the job can
// still be fetched by id.
func (r *Repository) DeactivateJob(id int64) error {
	query := `
		UPDATE jobs
		SET is_active = false, updated_at = NOW(), version = version + 1
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
