package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/omparkhi/JobWeb/internal/domain"
)

const applicationColumns = `
	a.id, a.job_id, a.candidate_id, a.status, a.cover_letter, a.notes,
	a.applied_at, a.updated_at, a.version,
	j.title, j.location, j.job_type, j.is_active,
	jcp.company_name, jcp.logo_url,
	cd.resume_url, cd.skills, cd.location,
	u.email, u.name
`

func scanApplication(row interface{ Scan(...any) error }) (*domain.Application, error) {
	app := &domain.Application{}
	job := &domain.Job{}
	company := &domain.CompanyProfile{}
	candidate := &domain.CandidateProfile{}
	user := &domain.User{}

	var (
		coverLetter sql.NullString
		notes       sql.NullString
		cdSkills    string
	)

	dst := []any{
		&app.ID, &app.JobID, &app.CandidateID, &app.Status, &coverLetter, &notes,
		&app.AppliedAt, &app.UpdatedAt, &app.Version,
		&job.Title, &job.Location, &job.JobType, &job.IsActive,
		&company.CompanyName, &company.LogoURL,
		&candidate.ResumeURL, &cdSkills, &candidate.Location,
		&user.Email, &user.Name,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	app.CoverLetter = coverLetter.String
	app.Notes = notes.String

	job.ID = app.JobID
	job.Company = company
	app.Job = job

	candidate.ID = app.CandidateID
	candidate.Skills = splitSkills(cdSkills)
	user.Role = domain.RoleCandidate
	candidate.User = user
	app.Candidate = candidate

	return app, nil
}

const applicationFrom = `
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN company_profiles jcp ON jcp.id = j.company_id
	JOIN candidate_profiles cd ON cd.id = a.candidate_id
	JOIN users u ON u.id = cd.user_id
`

// CreateApplication inserts with status = pending. The unique index on
// (job_id, candidate_id) is the authoritative duplicate check; a violation
// comes back as domain.ErrConflict, so the service-level pre-check only
// improves the error message, it is not load-bearing.
func (r *Repository) CreateApplication(app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_id, cover_letter)
		VALUES ($1, $2, $3)
		RETURNING id, status, applied_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var coverLetter sql.NullString
	if app.CoverLetter != "" {
		coverLetter = sql.NullString{String: app.CoverLetter, Valid: true}
	}

	args := []any{app.JobID, app.CandidateID, coverLetter}
	dst := []any{&app.ID, &app.Status, &app.AppliedAt, &app.UpdatedAt, &app.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "applications_job_id_candidate_id_key" {
			return fmt.Errorf("application for job %d by candidate %d: %w", app.JobID, app.CandidateID, domain.ErrConflict)
		}
		return err
	}

	return nil
}

func (r *Repository) GetApplicationByID(id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanApplication(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetApplicationByJobAndCandidate(jobID, candidateID int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.job_id = $1 AND a.candidate_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanApplication(r.dbpool.QueryRowContext(ctx, query, jobID, candidateID))
}

func (r *Repository) queryApplications(query string, args ...any) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]*domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *Repository) GetApplicationsByCandidate(candidateID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC
	`
	return r.queryApplications(query, candidateID)
}

func (r *Repository) GetApplicationsByJob(jobID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
	`
	return r.queryApplications(query, jobID)
}

func (r *Repository) GetApplicationsByJobIDs(jobIDs []int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.job_id = ANY($1)
		ORDER BY a.applied_at DESC
	`
	return r.queryApplications(query, jobIDs)
}

func (r *Repository) GetAllApplications() ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + applicationFrom + `
		ORDER BY a.applied_at DESC
	`
	return r.queryApplications(query)
}

func (r *Repository) UpdateApplication(app *domain.Application) error {
	query := `
		UPDATE applications
		SET
			status = $1,
			notes = $2,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var notes sql.NullString
	if app.Notes != "" {
		notes = sql.NullString{String: app.Notes, Valid: true}
	}

	args := []any{app.Status, notes, app.ID, app.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&app.UpdatedAt, &app.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteApplication(id int64) error {
	query := `
		DELETE FROM applications WHERE id = $1
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

func (r *Repository) GetApplicationStats() (*domain.ApplicationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'shortlisted'),
			COUNT(*) FILTER (WHERE status = 'accepted'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM applications
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	stats := &domain.ApplicationStats{}
	dst := []any{&stats.Total, &stats.Pending, &stats.Shortlisted, &stats.Accepted, &stats.Rejected}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return stats, nil
}
