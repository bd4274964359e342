package domain

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

type ExperienceLevel string

const (
	ExperienceLevelEntry     ExperienceLevel = "entry"
	ExperienceLevelMid       ExperienceLevel = "mid"
	ExperienceLevelSenior    ExperienceLevel = "senior"
	ExperienceLevelLead      ExperienceLevel = "lead"
	ExperienceLevelExecutive ExperienceLevel = "executive"
)

type Job struct {
	ID                  int64           `json:"id"`
	CompanyID           int64           `json:"companyId"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Requirements        string          `json:"requirements"`
	Location            string          `json:"location"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel"`
	JobType             JobType         `json:"jobType"`
	SalaryRange         string          `json:"salaryRange,omitempty"`
	Skills              []string        `json:"skills"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	IsActive            bool            `json:"isActive"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	Version             int32           `json:"-"`

	Company      *CompanyProfile `json:"company,omitempty"`
	Applications []*Application  `json:"applications,omitempty"`
}

// JobFilters are independent optional predicates, always ANDed with
// is_active = true. An absent filter means "no constraint".
type JobFilters struct {
	Title           string
	Location        string
	ExperienceLevel ExperienceLevel
	JobType         JobType
}

// JobUpdate lists the mutable job fields. CompanyID and IsActive are absent:
// ownership never moves, and deactivation goes through Delete.
type JobUpdate struct {
	Title               *string          `json:"title"`
	Description         *string          `json:"description"`
	Requirements        *string          `json:"requirements"`
	Location            *string          `json:"location"`
	ExperienceLevel     *ExperienceLevel `json:"experienceLevel"`
	JobType             *JobType         `json:"jobType"`
	SalaryRange         *string          `json:"salaryRange"`
	Skills              *[]string        `json:"skills"`
	ApplicationDeadline *time.Time       `json:"applicationDeadline"`
}

func (j *Job) Apply(patch *JobUpdate) {
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.Requirements != nil {
		j.Requirements = *patch.Requirements
	}
	if patch.Location != nil {
		j.Location = *patch.Location
	}
	if patch.ExperienceLevel != nil {
		j.ExperienceLevel = *patch.ExperienceLevel
	}
	if patch.JobType != nil {
		j.JobType = *patch.JobType
	}
	if patch.SalaryRange != nil {
		j.SalaryRange = *patch.SalaryRange
	}
	if patch.Skills != nil {
		j.Skills = *patch.Skills
	}
	if patch.ApplicationDeadline != nil {
		j.ApplicationDeadline = patch.ApplicationDeadline
	}
}
