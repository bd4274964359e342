package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

// Valid reports whether s is one of the four known statuses. Transitions
// between statuses are deliberately unrestricted: an authorized company may
// overwrite any status with any other.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"jobId"`
	CandidateID int64             `json:"candidateId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	AppliedAt   time.Time         `json:"appliedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Version     int32             `json:"-"`

	Job       *Job              `json:"job,omitempty"`
	Candidate *CandidateProfile `json:"candidate,omitempty"`
}

type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Shortlisted int64 `json:"shortlisted"`
	Accepted    int64 `json:"accepted"`
	Rejected    int64 `json:"rejected"`
}
