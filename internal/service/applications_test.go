package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func TestApplyToJob(t *testing.T) {
	f := newFixture()

	app, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "I am a great fit.")
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, app.Status)
	require.Equal(t, f.candidate.CandidateProfile.ID, app.CandidateID)
	require.Equal(t, f.job.ID, app.JobID)
}

func TestApplyToJobTwiceConflicts(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "first")
	require.NoError(t, err)

	_, err = f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "second")
	require.ErrorIs(t, err, domain.ErrConflict)

	// Still exactly one application on record.
	apps, err := f.svc.ListApplicationsByCandidateUser(f.candidate.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
}

func TestApplyToMissingJob(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ApplyToJob(f.candidate.ID, 9999, "hello")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyWithoutCandidateProfile(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ApplyToJob(f.approvedUser.ID, f.job.ID, "hello")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newFixture()

	app, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "hello")
	require.NoError(t, err)

	notes := "strong resume"
	updated, err := f.svc.UpdateApplicationStatus(app.ID, domain.ApplicationStatusShortlisted, f.approvedUser.ID, &notes)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusShortlisted, updated.Status)
	require.Equal(t, notes, updated.Notes)

	// Any status may overwrite any other, including going back to pending.
	updated, err = f.svc.UpdateApplicationStatus(app.ID, domain.ApplicationStatusPending, f.approvedUser.ID, nil)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, updated.Status)
	require.Equal(t, notes, updated.Notes)
}

func TestUpdateApplicationStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture()

	app, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "hello")
	require.NoError(t, err)

	_, err = f.svc.UpdateApplicationStatus(app.ID, "on-hold", f.approvedUser.ID, nil)
	require.Error(t, err)
}

func TestUpdateApplicationStatusOwnership(t *testing.T) {
	f := newFixture()

	app, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "hello")
	require.NoError(t, err)

	// A different company, owning no job the application targets, is refused.
	_, err = f.svc.ApproveCompany(f.pendingCo.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateApplicationStatus(app.ID, domain.ApplicationStatusAccepted, f.pendingUser.ID, nil)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteApplicationOwnership(t *testing.T) {
	f := newFixture()

	app, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "hello")
	require.NoError(t, err)

	other := f.store.addUser("other@example.com", domain.RoleCandidate)
	err = f.svc.DeleteApplication(app.ID, other.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, f.svc.DeleteApplication(app.ID, f.candidate.ID))

	_, err = f.svc.GetApplicationByID(app.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// A withdrawn candidate may apply again.
	_, err = f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "again")
	require.NoError(t, err)
}

func TestListApplicationsByCompanyUser(t *testing.T) {
	f := newFixture()

	second := &domain.Job{Title: "SRE", Description: "Keep it up"}
	require.NoError(t, f.svc.CreateJob(f.approvedUser.ID, second))

	other := f.store.addUser("other@example.com", domain.RoleCandidate)

	_, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "a")
	require.NoError(t, err)
	_, err = f.svc.ApplyToJob(other.ID, f.job.ID, "b")
	require.NoError(t, err)
	_, err = f.svc.ApplyToJob(f.candidate.ID, second.ID, "c")
	require.NoError(t, err)

	apps, err := f.svc.ListApplicationsByCompanyUser(f.approvedUser.ID)
	require.NoError(t, err)
	require.Len(t, apps, 3)

	// A company with no jobs sees an empty list, not an error.
	apps, err = f.svc.ListApplicationsByCompanyUser(f.pendingUser.ID)
	require.NoError(t, err)
	require.Empty(t, apps)
}

func TestApplicationLifecycleFlow(t *testing.T) {
	f := newFixture()

	app, err := f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, app.Status)

	updated, err := f.svc.UpdateApplicationStatus(app.ID, domain.ApplicationStatusShortlisted, f.approvedUser.ID, nil)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusShortlisted, updated.Status)

	other := f.store.addUser("other@example.com", domain.RoleCandidate)
	err = f.svc.DeleteApplication(app.ID, other.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.ApplyToJob(f.candidate.ID, f.job.ID, "again")
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestApplicationStatsConsistency(t *testing.T) {
	f := newFixture()

	users := []*domain.User{
		f.candidate,
		f.store.addUser("a@example.com", domain.RoleCandidate),
		f.store.addUser("b@example.com", domain.RoleCandidate),
		f.store.addUser("c@example.com", domain.RoleCandidate),
	}
	statuses := []domain.ApplicationStatus{
		domain.ApplicationStatusPending,
		domain.ApplicationStatusShortlisted,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	}
	for i, user := range users {
		app, err := f.svc.ApplyToJob(user.ID, f.job.ID, "hello")
		require.NoError(t, err)
		_, err = f.svc.UpdateApplicationStatus(app.ID, statuses[i], f.approvedUser.ID, nil)
		require.NoError(t, err)
	}

	stats, err := f.svc.ApplicationStats()
	require.NoError(t, err)
	require.Equal(t, int64(4), stats.Total)
	require.Equal(t, stats.Total, stats.Pending+stats.Shortlisted+stats.Accepted+stats.Rejected)
	require.Equal(t, int64(1), stats.Pending)
	require.Equal(t, int64(1), stats.Shortlisted)
	require.Equal(t, int64(1), stats.Accepted)
	require.Equal(t, int64(1), stats.Rejected)
}
