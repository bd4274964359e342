// Package service holds the governance rules of the platform: who may do
// what to which entity and in what state. Ownership checks, the company
// approval gate, the one-application-per-job-per-candidate rule, and the
// application status lifecycle all live here, on top of a storage interface.
package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/omparkhi/JobWeb/internal/domain"
)

// Store is the persistence surface the rules operate on. It is satisfied by
// *repository.Repository; tests use an in-memory implementation.
//
// Contract: every Get* returns sql.ErrNoRows when the entity is absent, and
// CreateApplication returns domain.ErrConflict when the (job, candidate)
// pair already exists.
type Store interface {
	GetAllUsers() ([]*domain.User, error)
	DeleteUser(id int64) error

	GetCandidateProfileByUserID(userID int64) (*domain.CandidateProfile, error)
	UpdateCandidateProfile(profile *domain.CandidateProfile) error

	CreateCompanyProfile(profile *domain.CompanyProfile) error
	GetCompanyProfileByUserID(userID int64) (*domain.CompanyProfile, error)
	GetCompanyProfileByID(id int64) (*domain.CompanyProfile, error)
	GetAllCompanyProfiles() ([]*domain.CompanyProfile, error)
	GetPendingCompanyProfiles() ([]*domain.CompanyProfile, error)
	GetApprovedCompanyProfiles() ([]*domain.CompanyProfile, error)
	UpdateCompanyProfile(profile *domain.CompanyProfile) error
	SetCompanyApproval(id int64, approved bool) error
	DeleteCompanyProfile(id int64) error

	CreateJob(job *domain.Job) error
	SearchJobs(filters domain.JobFilters) ([]*domain.Job, error)
	GetJobByID(id int64) (*domain.Job, error)
	GetJobsByCompany(companyID int64) ([]*domain.Job, error)
	GetJobIDsByCompany(companyID int64) ([]int64, error)
	GetAllJobs() ([]*domain.Job, error)
	UpdateJob(job *domain.Job) error
	DeactivateJob(id int64) error

	CreateApplication(app *domain.Application) error
	GetApplicationByID(id int64) (*domain.Application, error)
	GetApplicationByJobAndCandidate(jobID, candidateID int64) (*domain.Application, error)
	GetApplicationsByCandidate(candidateID int64) ([]*domain.Application, error)
	GetApplicationsByJob(jobID int64) ([]*domain.Application, error)
	GetApplicationsByJobIDs(jobIDs []int64) ([]*domain.Application, error)
	GetAllApplications() ([]*domain.Application, error)
	UpdateApplication(app *domain.Application) error
	DeleteApplication(id int64) error
	GetApplicationStats() (*domain.ApplicationStats, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// asNotFound converts the store's no-rows signal into the domain error,
// keeping everything else untouched.
func asNotFound(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	return err
}
