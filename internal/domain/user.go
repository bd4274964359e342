package domain

import (
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Version      int32     `json:"-"`

	// Populated by eager-loading reads, nil otherwise.
	CandidateProfile *CandidateProfile `json:"candidateProfile,omitempty"`
	CompanyProfile   *CompanyProfile   `json:"companyProfile,omitempty"`
}
