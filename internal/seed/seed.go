package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/omparkhi/JobWeb/internal/domain"
	"github.com/omparkhi/JobWeb/internal/repository"
	"github.com/omparkhi/JobWeb/internal/utils"
)

var demoCompanies = []struct {
	Name     string
	Industry string
	Size     string
	Location string
	Approved bool
}{
	{"Northwind Analytics", "Data & AI", "51-200", "Berlin", true},
	{"Bluehill Robotics", "Hardware", "11-50", "Munich", true},
	{"Cloudpine Systems", "Cloud Infrastructure", "201-500", "Amsterdam", true},
	{"Quartz Health", "Healthcare", "51-200", "London", false},
	{"Lanternworks", "Gaming", "1-10", "Warsaw", false},
}

var demoJobTitles = []string{
	"Backend Engineer", "Frontend Developer", "Platform Engineer",
	"Data Engineer", "QA Engineer", "Engineering Manager",
	"Site Reliability Engineer", "Product Designer",
}

var demoSkills = []string{
	"go", "postgresql", "react", "typescript", "docker", "kubernetes",
	"rabbitmq", "redis", "terraform", "python",
}

var experienceLevels = []domain.ExperienceLevel{
	domain.ExperienceLevelEntry, domain.ExperienceLevelMid,
	domain.ExperienceLevelSenior, domain.ExperienceLevelLead,
	domain.ExperienceLevelExecutive,
}

var jobTypes = []domain.JobType{
	domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract,
	domain.JobTypeInternship, domain.JobTypeFreelance,
}

func pickSkills() []string {
	n := rand.Intn(4) + 2
	skills := make([]string, 0, n)
	for _, i := range rand.Perm(len(demoSkills))[:n] {
		skills = append(skills, demoSkills[i])
	}
	return skills
}

// SeedDemoData populates demo candidates, companies, jobs and applications.
// Rules are honored the same way the services honor them: only approved
// companies get jobs, each candidate applies to a job at most once.
func SeedDemoData(r *repository.Repository, password string) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("unable to hash seed password", "error", err)
		return
	}

	// Candidates.
	candidates := make([]*domain.CandidateProfile, 0, 10)
	for i := 0; i < 10; i++ {
		fullName := utils.GenerateRandomFullName()
		user := &domain.User{
			Email:        utils.EmailFromName(fullName, "example.com"),
			PasswordHash: string(passwordHash),
			Name:         fullName,
			Role:         domain.RoleCandidate,
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("unable to seed candidate", "email", user.Email, "error", err)
			continue
		}

		profile := user.CandidateProfile
		profile.Skills = pickSkills()
		profile.Location = []string{"Berlin", "Munich", "Amsterdam", "London", "Warsaw"}[rand.Intn(5)]
		if err := r.UpdateCandidateProfile(profile); err != nil {
			slog.Error("unable to seed candidate profile", "email", user.Email, "error", err)
			continue
		}
		candidates = append(candidates, profile)
	}

	// Companies, a mix of approved and pending.
	jobs := make([]*domain.Job, 0)
	for _, c := range demoCompanies {
		fullName := utils.GenerateRandomFullName()
		user := &domain.User{
			Email:        utils.EmailFromName(fullName, "example.com"),
			PasswordHash: string(passwordHash),
			Name:         fullName,
			Role:         domain.RoleCompany,
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("unable to seed company user", "email", user.Email, "error", err)
			continue
		}

		profile := &domain.CompanyProfile{
			UserID:      user.ID,
			CompanyName: c.Name,
			Industry:    c.Industry,
			CompanySize: c.Size,
			Location:    c.Location,
			FoundedYear: int32(2000 + rand.Intn(24)),
		}
		if err := r.CreateCompanyProfile(profile); err != nil {
			slog.Error("unable to seed company profile", "company", c.Name, "error", err)
			continue
		}

		if !c.Approved {
			continue
		}
		if err := r.SetCompanyApproval(profile.ID, true); err != nil {
			slog.Error("unable to approve seeded company", "company", c.Name, "error", err)
			continue
		}

		// Jobs for approved companies only.
		for i := 0; i < rand.Intn(3)+2; i++ {
			deadline := time.Now().AddDate(0, 1+rand.Intn(3), 0)
			job := &domain.Job{
				CompanyID:           profile.ID,
				Title:               demoJobTitles[rand.Intn(len(demoJobTitles))],
				Description:         "Join " + c.Name + " and help us build our platform.",
				Requirements:        "Relevant experience with our stack.",
				Location:            c.Location,
				ExperienceLevel:     experienceLevels[rand.Intn(len(experienceLevels))],
				JobType:             jobTypes[rand.Intn(len(jobTypes))],
				Skills:              pickSkills(),
				ApplicationDeadline: &deadline,
			}
			if err := r.CreateJob(job); err != nil {
				slog.Error("unable to seed job", "company", c.Name, "error", err)
				continue
			}
			jobs = append(jobs, job)
		}
	}

	// Applications: each candidate applies to a few distinct jobs.
	statuses := []domain.ApplicationStatus{
		domain.ApplicationStatusPending, domain.ApplicationStatusPending,
		domain.ApplicationStatusShortlisted, domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	}
	for _, candidate := range candidates {
		if len(jobs) == 0 {
			break
		}
		n := rand.Intn(3) + 1
		if n > len(jobs) {
			n = len(jobs)
		}
		for _, i := range rand.Perm(len(jobs))[:n] {
			app := &domain.Application{
				JobID:       jobs[i].ID,
				CandidateID: candidate.ID,
				CoverLetter: "I would love to join your team.",
			}
			if err := r.CreateApplication(app); err != nil {
				slog.Error("unable to seed application", "job", jobs[i].ID, "error", err)
				continue
			}

			status := statuses[rand.Intn(len(statuses))]
			if status == domain.ApplicationStatusPending {
				continue
			}
			app.Status = status
			if err := r.UpdateApplication(app); err != nil {
				slog.Error("unable to seed application status", "application", app.ID, "error", err)
			}
		}
	}

	slog.Info("seeding finished", "candidates", len(candidates), "jobs", len(jobs))
}
