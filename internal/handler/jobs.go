package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (h *Handler) jobIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// SearchJobs is the public job board listing: optional independent filters,
// active jobs only, newest first.
func (h *Handler) SearchJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.JobFilters{
		Title:           q.Get("title"),
		Location:        q.Get("location"),
		ExperienceLevel: domain.ExperienceLevel(q.Get("experienceLevel")),
		JobType:         domain.JobType(q.Get("jobType")),
	}

	jobs, err := h.service.SearchJobs(filters)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs retrieved", jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.jobIDParam(r)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.service.GetJobByID(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "job retrieved", job)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title               string     `json:"title" validate:"required"`
		Description         string     `json:"description" validate:"required"`
		Requirements        string     `json:"requirements" validate:"required"`
		Location            string     `json:"location" validate:"required"`
		ExperienceLevel     string     `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior lead executive"`
		JobType             string     `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship freelance"`
		SalaryRange         string     `json:"salaryRange"`
		Skills              []string   `json:"skills"`
		ApplicationDeadline *time.Time `json:"applicationDeadline"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	job := &domain.Job{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		ExperienceLevel:     domain.ExperienceLevel(req.ExperienceLevel),
		JobType:             domain.JobType(req.JobType),
		SalaryRange:         req.SalaryRange,
		Skills:              req.Skills,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}

	if err := h.service.CreateJob(userID, job); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.createdResponse(w, r, "job created", job)
}

func (h *Handler) GetMyJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	jobs, err := h.service.ListJobsByOwner(userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs retrieved", jobs)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.jobIDParam(r)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid job id")
		return
	}

	var req domain.JobUpdate
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.ExperienceLevel != nil && !validExperienceLevel(*req.ExperienceLevel) {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid experience level")
		return
	}
	if req.JobType != nil && !validJobType(*req.JobType) {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid job type")
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	job, err := h.service.UpdateJob(id, userID, &req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "job updated", job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.jobIDParam(r)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid job id")
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.service.DeleteJob(id, userID); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "job deleted", nil)
}

func validExperienceLevel(l domain.ExperienceLevel) bool {
	switch l {
	case domain.ExperienceLevelEntry, domain.ExperienceLevelMid,
		domain.ExperienceLevelSenior, domain.ExperienceLevelLead,
		domain.ExperienceLevelExecutive:
		return true
	}
	return false
}

func validJobType(t domain.JobType) bool {
	switch t {
	case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract,
		domain.JobTypeInternship, domain.JobTypeFreelance:
		return true
	}
	return false
}
