package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (r *Repository) CreateCompanyProfile(profile *domain.CompanyProfile) error {
	query := `
		INSERT INTO company_profiles (
			user_id, company_name, description, website, location,
			logo_url, industry, company_size, founded_year
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, is_approved, is_active, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		profile.UserID, profile.CompanyName, profile.Description, profile.Website,
		profile.Location, profile.LogoURL, profile.Industry, profile.CompanySize,
		profile.FoundedYear,
	}
	dst := []any{&profile.ID, &profile.IsApproved, &profile.IsActive, &profile.CreatedAt, &profile.UpdatedAt, &profile.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

const companyProfileColumns = `
	cp.id, cp.user_id, cp.company_name, cp.description, cp.website, cp.location,
	cp.logo_url, cp.industry, cp.company_size, cp.founded_year,
	cp.is_approved, cp.is_active, cp.created_at, cp.updated_at, cp.version,
	u.email, u.name
`

func (r *Repository) scanCompanyProfile(row interface{ Scan(...any) error }) (*domain.CompanyProfile, error) {
	profile := &domain.CompanyProfile{}
	user := &domain.User{}

	dst := []any{
		&profile.ID, &profile.UserID, &profile.CompanyName, &profile.Description,
		&profile.Website, &profile.Location, &profile.LogoURL, &profile.Industry,
		&profile.CompanySize, &profile.FoundedYear, &profile.IsApproved,
		&profile.IsActive, &profile.CreatedAt, &profile.UpdatedAt, &profile.Version,
		&user.Email, &user.Name,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	user.ID = profile.UserID
	user.Role = domain.RoleCompany
	profile.User = user

	return profile, nil
}

func (r *Repository) GetCompanyProfileByUserID(userID int64) (*domain.CompanyProfile, error) {
	query := `
		SELECT ` + companyProfileColumns + `
		FROM company_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanCompanyProfile(r.dbpool.QueryRowContext(ctx, query, userID))
}

func (r *Repository) GetCompanyProfileByID(id int64) (*domain.CompanyProfile, error) {
	query := `
		SELECT ` + companyProfileColumns + `
		FROM company_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanCompanyProfile(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) queryCompanyProfiles(query string, args ...any) ([]*domain.CompanyProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*domain.CompanyProfile, 0)
	for rows.Next() {
		profile, err := r.scanCompanyProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *Repository) GetAllCompanyProfiles() ([]*domain.CompanyProfile, error) {
	query := `
		SELECT ` + companyProfileColumns + `
		FROM company_profiles cp
		JOIN users u ON u.id = cp.user_id
		ORDER BY cp.created_at DESC
	`
	return r.queryCompanyProfiles(query)
}

func (r *Repository) GetPendingCompanyProfiles() ([]*domain.CompanyProfile, error) {
	query := `
		SELECT ` + companyProfileColumns + `
		FROM company_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.is_approved = false AND cp.is_active = true
		ORDER BY cp.created_at DESC
	`
	return r.queryCompanyProfiles(query)
}

func (r *Repository) GetApprovedCompanyProfiles() ([]*domain.CompanyProfile, error) {
	query := `
		SELECT ` + companyProfileColumns + `
		FROM company_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.is_approved = true AND cp.is_active = true
		ORDER BY cp.created_at DESC
	`
	return r.queryCompanyProfiles(query)
}

func (r *Repository) UpdateCompanyProfile(profile *domain.CompanyProfile) error {
	query := `
		UPDATE company_profiles
		SET
			company_name = $1,
			description = $2,
			website = $3,
			location = $4,
			logo_url = $5,
			industry = $6,
			company_size = $7,
			founded_year = $8,
			is_active = $9,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		profile.CompanyName, profile.Description, profile.Website, profile.Location,
		profile.LogoURL, profile.Industry, profile.CompanySize, profile.FoundedYear,
		profile.IsActive, profile.ID, profile.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&profile.UpdatedAt, &profile.Version); err != nil {
		return err
	}

	return nil
}

// SetCompanyApproval is the only write path for is_approved. It deliberately
// does not touch the company's existing jobs.
func (r *Repository) SetCompanyApproval(id int64, approved bool) error {
	query := `
		UPDATE company_profiles
		SET is_approved = $1, updated_at = NOW(), version = version + 1
		WHERE id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, approved, id)
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

func (r *Repository) DeleteCompanyProfile(id int64) error {
	query := `
		DELETE FROM company_profiles WHERE id = $1
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
