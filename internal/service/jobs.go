package service

import (
	"fmt"

	"github.com/omparkhi/JobWeb/internal/domain"
)

// CreateJob resolves the caller's company profile and enforces the approval
// gate. Approval is checked here and only here: a later rejection does not
// deactivate jobs that were posted while approved.
func (s *Service) CreateJob(userID int64, job *domain.Job) error {
	profile, err := s.GetCompanyByUserID(userID)
	if err != nil {
		return err
	}

	if !profile.IsApproved {
		return fmt.Errorf("company must be approved to post jobs: %w", domain.ErrForbidden)
	}

	job.CompanyID = profile.ID
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = domain.ExperienceLevelEntry
	}
	if job.JobType == "" {
		job.JobType = domain.JobTypeFullTime
	}

	return s.store.CreateJob(job)
}

func (s *Service) SearchJobs(filters domain.JobFilters) ([]*domain.Job, error) {
	return s.store.SearchJobs(filters)
}

// GetJobByID returns the job regardless of is_active, so soft-deleted jobs
// remain fetchable for detail views.
func (s *Service) GetJobByID(id int64) (*domain.Job, error) {
	job, err := s.store.GetJobByID(id)
	if err != nil {
		return nil, asNotFound("job", err)
	}
	return job, nil
}

func (s *Service) ListJobsByCompany(companyID int64) ([]*domain.Job, error) {
	return s.store.GetJobsByCompany(companyID)
}

func (s *Service) ListJobsByOwner(userID int64) ([]*domain.Job, error) {
	profile, err := s.GetCompanyByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.store.GetJobsByCompany(profile.ID)
}

// UpdateJob applies the patch only after verifying the caller's company owns
// the job.
func (s *Service) UpdateJob(id, userID int64, patch *domain.JobUpdate) (*domain.Job, error) {
	job, err := s.GetJobByID(id)
	if err != nil {
		return nil, err
	}

	profile, err := s.GetCompanyByUserID(userID)
	if err != nil {
		return nil, err
	}

	if job.CompanyID != profile.ID {
		return nil, fmt.Errorf("you can only update your own jobs: %w", domain.ErrForbidden)
	}

	job.Apply(patch)
	if err := s.store.UpdateJob(job); err != nil {
		return nil, asNotFound("job", err)
	}

	return job, nil
}

// DeleteJob is the company-facing delete: same ownership check as UpdateJob,
// implemented as a soft delete so the row survives for lookups by id.
func (s *Service) DeleteJob(id, userID int64) error {
	job, err := s.GetJobByID(id)
	if err != nil {
		return err
	}

	profile, err := s.GetCompanyByUserID(userID)
	if err != nil {
		return err
	}

	if job.CompanyID != profile.ID {
		return fmt.Errorf("you can only delete your own jobs: %w", domain.ErrForbidden)
	}

	if err := s.store.DeactivateJob(id); err != nil {
		return asNotFound("job", err)
	}

	return nil
}

// ListAllJobs is the admin listing: inactive jobs included.
func (s *Service) ListAllJobs() ([]*domain.Job, error) {
	return s.store.GetAllJobs()
}
