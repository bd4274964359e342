package domain

import "time"

type CompanyProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	CompanyName string    `json:"companyName"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	LogoURL     string    `json:"logoUrl"`
	Industry    string    `json:"industry"`
	CompanySize string    `json:"companySize"`
	FoundedYear int32     `json:"foundedYear"`
	IsApproved  bool      `json:"isApproved"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int32     `json:"-"`

	User *User  `json:"user,omitempty"`
	Jobs []*Job `json:"jobs,omitempty"`
}

// CompanyProfileUpdate lists the company-mutable fields. IsApproved is not
// here: only the admin approve/reject operations may touch it.
type CompanyProfileUpdate struct {
	CompanyName *string `json:"companyName"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
	LogoURL     *string `json:"logoUrl"`
	Industry    *string `json:"industry"`
	CompanySize *string `json:"companySize"`
	FoundedYear *int32  `json:"foundedYear"`
	IsActive    *bool   `json:"isActive"`
}

func (p *CompanyProfile) Apply(patch *CompanyProfileUpdate) {
	if patch.CompanyName != nil {
		p.CompanyName = *patch.CompanyName
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.LogoURL != nil {
		p.LogoURL = *patch.LogoURL
	}
	if patch.Industry != nil {
		p.Industry = *patch.Industry
	}
	if patch.CompanySize != nil {
		p.CompanySize = *patch.CompanySize
	}
	if patch.FoundedYear != nil {
		p.FoundedYear = *patch.FoundedYear
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}
