package service

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/omparkhi/JobWeb/internal/domain"
)

// memStore is an in-memory Store used by the tests in this package. It keeps
// the same contract as the SQL repository: sql.ErrNoRows for absent rows and
// domain.ErrConflict for a duplicate (job, candidate) application.
type memStore struct {
	users        map[int64]*domain.User
	candidates   map[int64]*domain.CandidateProfile
	companies    map[int64]*domain.CompanyProfile
	jobs         map[int64]*domain.Job
	applications map[int64]*domain.Application
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[int64]*domain.User),
		candidates:   make(map[int64]*domain.CandidateProfile),
		companies:    make(map[int64]*domain.CompanyProfile),
		jobs:         make(map[int64]*domain.Job),
		applications: make(map[int64]*domain.Application),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// addUser seeds a user, plus an empty candidate profile for candidates, the
// same way registration does.
func (m *memStore) addUser(email string, role domain.Role) *domain.User {
	user := &domain.User{
		ID:       m.id(),
		Email:    email,
		Name:     email,
		Role:     role,
		IsActive: true,
	}
	m.users[user.ID] = user

	if role == domain.RoleCandidate {
		profile := &domain.CandidateProfile{ID: m.id(), UserID: user.ID, Skills: []string{}}
		m.candidates[profile.ID] = profile
		user.CandidateProfile = profile
	}

	return user
}

func (m *memStore) GetAllUsers() ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memStore) DeleteUser(id int64) error {
	if _, ok := m.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.users, id)
	for pid, profile := range m.candidates {
		if profile.UserID == id {
			delete(m.candidates, pid)
		}
	}
	for pid, profile := range m.companies {
		if profile.UserID == id {
			delete(m.companies, pid)
		}
	}
	return nil
}

func (m *memStore) GetCandidateProfileByUserID(userID int64) (*domain.CandidateProfile, error) {
	for _, profile := range m.candidates {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) UpdateCandidateProfile(profile *domain.CandidateProfile) error {
	if _, ok := m.candidates[profile.ID]; !ok {
		return sql.ErrNoRows
	}
	m.candidates[profile.ID] = profile
	return nil
}

func (m *memStore) CreateCompanyProfile(profile *domain.CompanyProfile) error {
	profile.ID = m.id()
	profile.IsActive = true
	profile.CreatedAt = time.Now()
	m.companies[profile.ID] = profile
	return nil
}

func (m *memStore) GetCompanyProfileByUserID(userID int64) (*domain.CompanyProfile, error) {
	for _, profile := range m.companies {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) GetCompanyProfileByID(id int64) (*domain.CompanyProfile, error) {
	profile, ok := m.companies[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return profile, nil
}

func (m *memStore) listCompanies(keep func(*domain.CompanyProfile) bool) []*domain.CompanyProfile {
	profiles := make([]*domain.CompanyProfile, 0)
	for _, profile := range m.companies {
		if keep(profile) {
			profiles = append(profiles, profile)
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles
}

func (m *memStore) GetAllCompanyProfiles() ([]*domain.CompanyProfile, error) {
	return m.listCompanies(func(*domain.CompanyProfile) bool { return true }), nil
}

func (m *memStore) GetPendingCompanyProfiles() ([]*domain.CompanyProfile, error) {
	return m.listCompanies(func(p *domain.CompanyProfile) bool { return !p.IsApproved && p.IsActive }), nil
}

func (m *memStore) GetApprovedCompanyProfiles() ([]*domain.CompanyProfile, error) {
	return m.listCompanies(func(p *domain.CompanyProfile) bool { return p.IsApproved && p.IsActive }), nil
}

func (m *memStore) UpdateCompanyProfile(profile *domain.CompanyProfile) error {
	if _, ok := m.companies[profile.ID]; !ok {
		return sql.ErrNoRows
	}
	m.companies[profile.ID] = profile
	return nil
}

func (m *memStore) SetCompanyApproval(id int64, approved bool) error {
	profile, ok := m.companies[id]
	if !ok {
		return sql.ErrNoRows
	}
	profile.IsApproved = approved
	return nil
}

func (m *memStore) DeleteCompanyProfile(id int64) error {
	if _, ok := m.companies[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.companies, id)
	return nil
}

func (m *memStore) CreateJob(job *domain.Job) error {
	job.ID = m.id()
	job.IsActive = true
	job.CreatedAt = time.Now()
	m.jobs[job.ID] = job
	return nil
}

func (m *memStore) listJobs(keep func(*domain.Job) bool) []*domain.Job {
	jobs := make([]*domain.Job, 0)
	for _, job := range m.jobs {
		if keep(job) {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs
}

func (m *memStore) SearchJobs(filters domain.JobFilters) ([]*domain.Job, error) {
	return m.listJobs(func(j *domain.Job) bool {
		if !j.IsActive {
			return false
		}
		if filters.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(filters.Title)) {
			return false
		}
		if filters.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(filters.Location)) {
			return false
		}
		if filters.ExperienceLevel != "" && j.ExperienceLevel != filters.ExperienceLevel {
			return false
		}
		if filters.JobType != "" && j.JobType != filters.JobType {
			return false
		}
		return true
	}), nil
}

func (m *memStore) GetJobByID(id int64) (*domain.Job, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return job, nil
}

func (m *memStore) GetJobsByCompany(companyID int64) ([]*domain.Job, error) {
	return m.listJobs(func(j *domain.Job) bool { return j.CompanyID == companyID }), nil
}

func (m *memStore) GetJobIDsByCompany(companyID int64) ([]int64, error) {
	jobs := m.listJobs(func(j *domain.Job) bool { return j.CompanyID == companyID })
	ids := make([]int64, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	return ids, nil
}

func (m *memStore) GetAllJobs() ([]*domain.Job, error) {
	return m.listJobs(func(*domain.Job) bool { return true }), nil
}

func (m *memStore) UpdateJob(job *domain.Job) error {
	if _, ok := m.jobs[job.ID]; !ok {
		return sql.ErrNoRows
	}
	m.jobs[job.ID] = job
	return nil
}

func (m *memStore) DeactivateJob(id int64) error {
	job, ok := m.jobs[id]
	if !ok {
		return sql.ErrNoRows
	}
	job.IsActive = false
	return nil
}

func (m *memStore) CreateApplication(app *domain.Application) error {
	for _, existing := range m.applications {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return fmt.Errorf("application already exists: %w", domain.ErrConflict)
		}
	}
	app.ID = m.id()
	app.AppliedAt = time.Now()
	m.applications[app.ID] = app
	return nil
}

func (m *memStore) GetApplicationByID(id int64) (*domain.Application, error) {
	app, ok := m.applications[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return app, nil
}

func (m *memStore) GetApplicationByJobAndCandidate(jobID, candidateID int64) (*domain.Application, error) {
	for _, app := range m.applications {
		if app.JobID == jobID && app.CandidateID == candidateID {
			return app, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) listApplications(keep func(*domain.Application) bool) []*domain.Application {
	apps := make([]*domain.Application, 0)
	for _, app := range m.applications {
		if keep(app) {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

func (m *memStore) GetApplicationsByCandidate(candidateID int64) ([]*domain.Application, error) {
	return m.listApplications(func(a *domain.Application) bool { return a.CandidateID == candidateID }), nil
}

func (m *memStore) GetApplicationsByJob(jobID int64) ([]*domain.Application, error) {
	return m.listApplications(func(a *domain.Application) bool { return a.JobID == jobID }), nil
}

func (m *memStore) GetApplicationsByJobIDs(jobIDs []int64) ([]*domain.Application, error) {
	return m.listApplications(func(a *domain.Application) bool {
		for _, id := range jobIDs {
			if a.JobID == id {
				return true
			}
		}
		return false
	}), nil
}

func (m *memStore) GetAllApplications() ([]*domain.Application, error) {
	return m.listApplications(func(*domain.Application) bool { return true }), nil
}

func (m *memStore) UpdateApplication(app *domain.Application) error {
	if _, ok := m.applications[app.ID]; !ok {
		return sql.ErrNoRows
	}
	m.applications[app.ID] = app
	return nil
}

func (m *memStore) DeleteApplication(id int64) error {
	if _, ok := m.applications[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.applications, id)
	return nil
}

func (m *memStore) GetApplicationStats() (*domain.ApplicationStats, error) {
	stats := &domain.ApplicationStats{}
	for _, app := range m.applications {
		stats.Total++
		switch app.Status {
		case domain.ApplicationStatusPending:
			stats.Pending++
		case domain.ApplicationStatusShortlisted:
			stats.Shortlisted++
		case domain.ApplicationStatusAccepted:
			stats.Accepted++
		case domain.ApplicationStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

// fixture builds a service over a fresh memStore with one approved company
// (with a job), one pending company, and one candidate.
type fixture struct {
	store *memStore
	svc   *Service

	candidate    *domain.User
	approvedUser *domain.User
	approvedCo   *domain.CompanyProfile
	pendingUser  *domain.User
	pendingCo    *domain.CompanyProfile
	job          *domain.Job
}

func newFixture() *fixture {
	store := newMemStore()
	svc := NewService(store)

	f := &fixture{store: store, svc: svc}

	f.candidate = store.addUser("candidate@example.com", domain.RoleCandidate)

	f.approvedUser = store.addUser("approved@example.com", domain.RoleCompany)
	f.approvedCo = &domain.CompanyProfile{CompanyName: "Approved Co"}
	if err := svc.CreateCompanyProfile(f.approvedUser.ID, f.approvedCo); err != nil {
		panic(err)
	}
	if _, err := svc.ApproveCompany(f.approvedCo.ID); err != nil {
		panic(err)
	}

	f.pendingUser = store.addUser("pending@example.com", domain.RoleCompany)
	f.pendingCo = &domain.CompanyProfile{CompanyName: "Pending Co"}
	if err := svc.CreateCompanyProfile(f.pendingUser.ID, f.pendingCo); err != nil {
		panic(err)
	}

	f.job = &domain.Job{Title: "Backend Engineer", Description: "Build services", Location: "Berlin"}
	if err := svc.CreateJob(f.approvedUser.ID, f.job); err != nil {
		panic(err)
	}

	return f
}
