package service

import (
	"github.com/omparkhi/JobWeb/internal/domain"
)

// CreateCompanyProfile binds the profile to the given user. Profiles start
// unapproved; the admin approval flow flips the flag.
func (s *Service) CreateCompanyProfile(userID int64, profile *domain.CompanyProfile) error {
	profile.UserID = userID
	return s.store.CreateCompanyProfile(profile)
}

func (s *Service) GetCompanyByUserID(userID int64) (*domain.CompanyProfile, error) {
	profile, err := s.store.GetCompanyProfileByUserID(userID)
	if err != nil {
		return nil, asNotFound("company profile", err)
	}
	return profile, nil
}

func (s *Service) GetCompanyByID(id int64) (*domain.CompanyProfile, error) {
	profile, err := s.store.GetCompanyProfileByID(id)
	if err != nil {
		return nil, asNotFound("company profile", err)
	}
	return profile, nil
}

func (s *Service) UpdateCompanyProfile(id int64, patch *domain.CompanyProfileUpdate) (*domain.CompanyProfile, error) {
	profile, err := s.GetCompanyByID(id)
	if err != nil {
		return nil, err
	}

	profile.Apply(patch)
	if err := s.store.UpdateCompanyProfile(profile); err != nil {
		return nil, asNotFound("company profile", err)
	}

	return profile, nil
}

// ApproveCompany grants job-posting rights. Admin-only; the route layer
// enforces the role.
func (s *Service) ApproveCompany(id int64) (*domain.CompanyProfile, error) {
	if err := s.store.SetCompanyApproval(id, true); err != nil {
		return nil, asNotFound("company profile", err)
	}
	return s.GetCompanyByID(id)
}

// RejectCompany revokes the approval flag. Jobs the company already posted
// stay active: approval is only checked at job creation.
func (s *Service) RejectCompany(id int64) (*domain.CompanyProfile, error) {
	if err := s.store.SetCompanyApproval(id, false); err != nil {
		return nil, asNotFound("company profile", err)
	}
	return s.GetCompanyByID(id)
}

func (s *Service) ListPendingCompanies() ([]*domain.CompanyProfile, error) {
	return s.store.GetPendingCompanyProfiles()
}

// ListApprovedCompanies is the public company directory.
func (s *Service) ListApprovedCompanies() ([]*domain.CompanyProfile, error) {
	return s.store.GetApprovedCompanyProfiles()
}

func (s *Service) ListAllCompanies() ([]*domain.CompanyProfile, error) {
	return s.store.GetAllCompanyProfiles()
}

// DeleteCompany is the admin override: a hard delete with no ownership check.
func (s *Service) DeleteCompany(id int64) error {
	if err := s.store.DeleteCompanyProfile(id); err != nil {
		return asNotFound("company profile", err)
	}
	return nil
}
