package repository

import (
	"context"
	"time"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (r *Repository) GetCandidateProfileByUserID(userID int64) (*domain.CandidateProfile, error) {
	query := `
		SELECT id, resume_url, skills, experience, location, phone, bio,
			linkedin_url, github_url, portfolio_url, created_at, updated_at, version
		FROM candidate_profiles WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.CandidateProfile{
		UserID: userID,
	}

	var skills string
	dst := []any{
		&profile.ID, &profile.ResumeURL, &skills, &profile.Experience, &profile.Location,
		&profile.Phone, &profile.Bio, &profile.LinkedinURL, &profile.GithubURL,
		&profile.PortfolioURL, &profile.CreatedAt, &profile.UpdatedAt, &profile.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}
	profile.Skills = splitSkills(skills)

	return profile, nil
}

func (r *Repository) UpdateCandidateProfile(profile *domain.CandidateProfile) error {
	query := `
		UPDATE candidate_profiles
		SET
			resume_url = $1,
			skills = $2,
			experience = $3,
			location = $4,
			phone = $5,
			bio = $6,
			linkedin_url = $7,
			github_url = $8,
			portfolio_url = $9,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		profile.ResumeURL, joinSkills(profile.Skills), profile.Experience, profile.Location,
		profile.Phone, profile.Bio, profile.LinkedinURL, profile.GithubURL,
		profile.PortfolioURL, profile.ID, profile.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&profile.UpdatedAt, &profile.Version); err != nil {
		return err
	}

	return nil
}
