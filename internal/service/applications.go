package service

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/omparkhi/JobWeb/internal/domain"
)

// ApplyToJob creates a pending application after checking that the job
// exists and the candidate has not already applied. The pre-check gives the
// friendly error; the store's unique (job, candidate) constraint is what
// actually closes the race between two concurrent applies.
func (s *Service) ApplyToJob(candidateUserID, jobID int64, coverLetter string) (*domain.Application, error) {
	if _, err := s.GetJobByID(jobID); err != nil {
		return nil, err
	}

	candidate, err := s.getCandidateProfile(candidateUserID)
	if err != nil {
		return nil, err
	}

	_, err = s.store.GetApplicationByJobAndCandidate(jobID, candidate.ID)
	if err == nil {
		return nil, fmt.Errorf("you have already applied for this job: %w", domain.ErrConflict)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidate.ID,
		Status:      domain.ApplicationStatusPending,
		CoverLetter: coverLetter,
	}
	if err := s.store.CreateApplication(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *Service) GetApplicationByID(id int64) (*domain.Application, error) {
	app, err := s.store.GetApplicationByID(id)
	if err != nil {
		return nil, asNotFound("application", err)
	}
	return app, nil
}

func (s *Service) ListApplicationsByCandidate(candidateID int64) ([]*domain.Application, error) {
	return s.store.GetApplicationsByCandidate(candidateID)
}

func (s *Service) ListApplicationsByCandidateUser(userID int64) ([]*domain.Application, error) {
	candidate, err := s.getCandidateProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.store.GetApplicationsByCandidate(candidate.ID)
}

func (s *Service) ListApplicationsByJob(jobID int64) ([]*domain.Application, error) {
	return s.store.GetApplicationsByJob(jobID)
}

// ListApplicationsByCompanyUser returns every application against any job
// owned by the company user.
func (s *Service) ListApplicationsByCompanyUser(companyUserID int64) ([]*domain.Application, error) {
	jobIDs, err := s.ownedJobIDs(companyUserID)
	if err != nil {
		return nil, err
	}
	if len(jobIDs) == 0 {
		return []*domain.Application{}, nil
	}
	return s.store.GetApplicationsByJobIDs(jobIDs)
}

// UpdateApplicationStatus writes the status (and notes, when given) after
// verifying the application's job belongs to the caller's company. Any of
// the four statuses may overwrite any other; there is no forward-only
// progression.
func (s *Service) UpdateApplicationStatus(id int64, status domain.ApplicationStatus, companyUserID int64, notes *string) (*domain.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid application status %q", status)
	}

	app, err := s.GetApplicationByID(id)
	if err != nil {
		return nil, err
	}

	jobIDs, err := s.ownedJobIDs(companyUserID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(jobIDs, app.JobID) {
		return nil, fmt.Errorf("you can only update applications for your jobs: %w", domain.ErrForbidden)
	}

	app.Status = status
	if notes != nil {
		app.Notes = *notes
	}
	if err := s.store.UpdateApplication(app); err != nil {
		return nil, asNotFound("application", err)
	}

	return app, nil
}

// DeleteApplication is candidate-owned and a hard delete, unlike the
// company-facing soft delete on jobs.
func (s *Service) DeleteApplication(id, candidateUserID int64) error {
	app, err := s.GetApplicationByID(id)
	if err != nil {
		return err
	}

	candidate, err := s.getCandidateProfile(candidateUserID)
	if err != nil {
		return err
	}

	if app.CandidateID != candidate.ID {
		return fmt.Errorf("you can only delete your own applications: %w", domain.ErrForbidden)
	}

	if err := s.store.DeleteApplication(id); err != nil {
		return asNotFound("application", err)
	}

	return nil
}

func (s *Service) ListAllApplications() ([]*domain.Application, error) {
	return s.store.GetAllApplications()
}

func (s *Service) ApplicationStats() (*domain.ApplicationStats, error) {
	return s.store.GetApplicationStats()
}

func (s *Service) getCandidateProfile(userID int64) (*domain.CandidateProfile, error) {
	candidate, err := s.store.GetCandidateProfileByUserID(userID)
	if err != nil {
		return nil, asNotFound("candidate profile", err)
	}
	return candidate, nil
}

func (s *Service) ownedJobIDs(companyUserID int64) ([]int64, error) {
	profile, err := s.GetCompanyByUserID(companyUserID)
	if err != nil {
		return nil, err
	}
	return s.store.GetJobIDsByCompany(profile.ID)
}
