package domain

import "time"

type CandidateProfile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	ResumeURL    string    `json:"resumeUrl"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	Location     string    `json:"location"`
	Phone        string    `json:"phone"`
	Bio          string    `json:"bio"`
	LinkedinURL  string    `json:"linkedinUrl"`
	GithubURL    string    `json:"githubUrl"`
	PortfolioURL string    `json:"portfolioUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Version      int32     `json:"-"`

	User *User `json:"user,omitempty"`
}

// CandidateProfileUpdate lists exactly the candidate-mutable fields. Identity
// and ownership keys are deliberately absent.
type CandidateProfileUpdate struct {
	ResumeURL    *string   `json:"resumeUrl"`
	Skills       *[]string `json:"skills"`
	Experience   *string   `json:"experience"`
	Location     *string   `json:"location"`
	Phone        *string   `json:"phone"`
	Bio          *string   `json:"bio"`
	LinkedinURL  *string   `json:"linkedinUrl"`
	GithubURL    *string   `json:"githubUrl"`
	PortfolioURL *string   `json:"portfolioUrl"`
}

func (p *CandidateProfile) Apply(patch *CandidateProfileUpdate) {
	if patch.ResumeURL != nil {
		p.ResumeURL = *patch.ResumeURL
	}
	if patch.Skills != nil {
		p.Skills = *patch.Skills
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.LinkedinURL != nil {
		p.LinkedinURL = *patch.LinkedinURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = *patch.GithubURL
	}
	if patch.PortfolioURL != nil {
		p.PortfolioURL = *patch.PortfolioURL
	}
}
