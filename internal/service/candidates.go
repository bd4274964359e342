package service

import (
	"github.com/omparkhi/JobWeb/internal/domain"
)

func (s *Service) GetCandidateByUserID(userID int64) (*domain.CandidateProfile, error) {
	return s.getCandidateProfile(userID)
}

// UpdateCandidateProfile mutates the caller's own profile only: the profile
// is resolved from the caller's user id, never from the payload.
func (s *Service) UpdateCandidateProfile(userID int64, patch *domain.CandidateProfileUpdate) (*domain.CandidateProfile, error) {
	profile, err := s.getCandidateProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.Apply(patch)
	if err := s.store.UpdateCandidateProfile(profile); err != nil {
		return nil, asNotFound("candidate profile", err)
	}

	return profile, nil
}
