package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/omparkhi/JobWeb/internal/domain"
)

// CreateUser inserts the user and, for candidate-role users, the empty
// candidate profile in the same transaction so a candidate never exists
// without a profile.
func (r *Repository) CreateUser(user *domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at, version
	`

	args := []any{user.Email, user.PasswordHash, user.Name, user.Role}
	dst := []any{&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	if user.Role == domain.RoleCandidate {
		query := `
			INSERT INTO candidate_profiles (user_id, skills)
			VALUES ($1, '')
			RETURNING id, created_at, updated_at, version
		`

		profile := &domain.CandidateProfile{UserID: user.ID, Skills: []string{}}
		dst := []any{&profile.ID, &profile.CreatedAt, &profile.UpdatedAt, &profile.Version}
		if err := tx.QueryRowContext(ctx, query, user.ID).Scan(dst...); err != nil {
			return err
		}
		user.CandidateProfile = profile
	}

	return tx.Commit()
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	query := `
		SELECT email, password_hash, name, role, is_active, created_at, updated_at, version
		FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	user := &domain.User{
		ID: id,
	}

	dst := []any{&user.Email, &user.PasswordHash, &user.Name, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	query := `
		SELECT id, password_hash, name, role, is_active, created_at, updated_at, version
		FROM users WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	user := &domain.User{
		Email: email,
	}

	dst := []any{&user.ID, &user.PasswordHash, &user.Name, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) UpdateUser(user *domain.User) error {
	query := `
		UPDATE users
		SET
			password_hash = $1,
			name = $2,
			is_active = $3,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING email, role, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{user.PasswordHash, user.Name, user.IsActive, user.ID, user.Version}
	dst := []any{&user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

// GetAllUsers returns every user with its candidate or company profile
// attached when one exists.
func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	query := `
		SELECT
			u.id, u.email, u.name, u.role, u.is_active, u.created_at, u.updated_at, u.version,
			cd.id, cd.resume_url, cd.skills, cd.location,
			cp.id, cp.company_name, cp.is_approved, cp.is_active
		FROM users u
		LEFT JOIN candidate_profiles cd ON cd.user_id = u.id
		LEFT JOIN company_profiles cp ON cp.user_id = u.id
		ORDER BY u.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}

		var (
			cdID        sql.NullInt64
			cdResumeURL sql.NullString
			cdSkills    sql.NullString
			cdLocation  sql.NullString
			cpID        sql.NullInt64
			cpName      sql.NullString
			cpApproved  sql.NullBool
			cpActive    sql.NullBool
		)

		dst := []any{
			&user.ID, &user.Email, &user.Name, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.Version,
			&cdID, &cdResumeURL, &cdSkills, &cdLocation,
			&cpID, &cpName, &cpApproved, &cpActive,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if cdID.Valid {
			user.CandidateProfile = &domain.CandidateProfile{
				ID:        cdID.Int64,
				UserID:    user.ID,
				ResumeURL: cdResumeURL.String,
				Skills:    splitSkills(cdSkills.String),
				Location:  cdLocation.String,
			}
		}
		if cpID.Valid {
			user.CompanyProfile = &domain.CompanyProfile{
				ID:          cpID.Int64,
				UserID:      user.ID,
				CompanyName: cpName.String,
				IsApproved:  cpApproved.Bool,
				IsActive:    cpActive.Bool,
			}
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) DeleteUser(id int64) error {
	query := `
		DELETE FROM users WHERE id = $1
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
