package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func TestCompanyApprovalFlow(t *testing.T) {
	f := newFixture()

	require.False(t, f.pendingCo.IsApproved)

	pending, err := f.svc.ListPendingCompanies()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, f.pendingCo.ID, pending[0].ID)

	approved, err := f.svc.ListApprovedCompanies()
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.Equal(t, f.approvedCo.ID, approved[0].ID)

	profile, err := f.svc.ApproveCompany(f.pendingCo.ID)
	require.NoError(t, err)
	require.True(t, profile.IsApproved)

	pending, err = f.svc.ListPendingCompanies()
	require.NoError(t, err)
	require.Empty(t, pending)

	// Rejection flips the flag back.
	profile, err = f.svc.RejectCompany(f.pendingCo.ID)
	require.NoError(t, err)
	require.False(t, profile.IsApproved)
}

func TestApproveMissingCompany(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ApproveCompany(9999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCompanyProfileCannotTouchApproval(t *testing.T) {
	f := newFixture()

	name := "Renamed Co"
	year := int32(2015)
	profile, err := f.svc.UpdateCompanyProfile(f.pendingCo.ID, &domain.CompanyProfileUpdate{
		CompanyName: &name,
		FoundedYear: &year,
	})
	require.NoError(t, err)
	require.Equal(t, name, profile.CompanyName)
	require.Equal(t, year, profile.FoundedYear)
	require.False(t, profile.IsApproved)
}

func TestDeleteCompany(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.svc.DeleteCompany(f.pendingCo.ID))

	_, err := f.svc.GetCompanyByID(f.pendingCo.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = f.svc.DeleteCompany(f.pendingCo.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCandidateProfile(t *testing.T) {
	f := newFixture()

	skills := []string{"go", "postgresql"}
	location := "Berlin"
	profile, err := f.svc.UpdateCandidateProfile(f.candidate.ID, &domain.CandidateProfileUpdate{
		Skills:   &skills,
		Location: &location,
	})
	require.NoError(t, err)
	require.Equal(t, skills, profile.Skills)
	require.Equal(t, location, profile.Location)

	// Company users have no candidate profile to update.
	_, err = f.svc.UpdateCandidateProfile(f.approvedUser.ID, &domain.CandidateProfileUpdate{Location: &location})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
