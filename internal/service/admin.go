package service

import (
	"github.com/omparkhi/JobWeb/internal/domain"
)

// Analytics is the admin dashboard rollup. Everything is derived in memory
// from the full listings; only the application breakdown comes from a
// dedicated stats query.
type Analytics struct {
	TotalUsers              int   `json:"totalUsers"`
	TotalCandidates         int   `json:"totalCandidates"`
	TotalCompanies          int   `json:"totalCompanies"`
	ApprovedCompanies       int   `json:"approvedCompanies"`
	PendingCompanies        int   `json:"pendingCompanies"`
	TotalJobs               int   `json:"totalJobs"`
	ActiveJobs              int   `json:"activeJobs"`
	TotalApplications       int64 `json:"totalApplications"`
	PendingApplications     int64 `json:"pendingApplications"`
	ShortlistedApplications int64 `json:"shortlistedApplications"`
	AcceptedApplications    int64 `json:"acceptedApplications"`
	RejectedApplications    int64 `json:"rejectedApplications"`
}

func (s *Service) GetAnalytics() (*Analytics, error) {
	users, err := s.store.GetAllUsers()
	if err != nil {
		return nil, err
	}

	companies, err := s.store.GetAllCompanyProfiles()
	if err != nil {
		return nil, err
	}

	jobs, err := s.store.GetAllJobs()
	if err != nil {
		return nil, err
	}

	stats, err := s.store.GetApplicationStats()
	if err != nil {
		return nil, err
	}

	analytics := &Analytics{
		TotalUsers:              len(users),
		TotalCompanies:          len(companies),
		TotalJobs:               len(jobs),
		TotalApplications:       stats.Total,
		PendingApplications:     stats.Pending,
		ShortlistedApplications: stats.Shortlisted,
		AcceptedApplications:    stats.Accepted,
		RejectedApplications:    stats.Rejected,
	}

	for _, user := range users {
		if user.Role == domain.RoleCandidate {
			analytics.TotalCandidates++
		}
	}
	for _, company := range companies {
		if company.IsApproved {
			analytics.ApprovedCompanies++
		} else if company.IsActive {
			analytics.PendingCompanies++
		}
	}
	for _, job := range jobs {
		if job.IsActive {
			analytics.ActiveJobs++
		}
	}

	return analytics, nil
}

func (s *Service) ListAllUsers() ([]*domain.User, error) {
	return s.store.GetAllUsers()
}

// DeleteUser is the admin override: no ownership check, hard delete, and the
// user's profile rows cascade with it.
func (s *Service) DeleteUser(id int64) error {
	if err := s.store.DeleteUser(id); err != nil {
		return asNotFound("user", err)
	}
	return nil
}
