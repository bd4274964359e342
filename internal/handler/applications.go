package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID       int64  `json:"jobId" validate:"required"`
		CoverLetter string `json:"coverLetter"`
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

	app, err := h.service.ApplyToJob(userID, req.JobID, req.CoverLetter)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.createdResponse(w, r, "application submitted", app)
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.service.GetApplicationByID(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "application retrieved", app)
}

func (h *Handler) GetMyApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	apps, err := h.service.ListApplicationsByCandidateUser(userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications retrieved", apps)
}

func (h *Handler) GetCompanyApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	apps, err := h.service.ListApplicationsByCompanyUser(userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications retrieved", apps)
}

func (h *Handler) GetJobApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid job id")
		return
	}

	apps, err := h.service.ListApplicationsByJob(jobID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications retrieved", apps)
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid application id")
		return
	}

	var req struct {
		Status string  `json:"status" validate:"required,oneof=pending shortlisted rejected accepted"`
		Notes  *string `json:"notes"`
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

	app, err := h.service.UpdateApplicationStatus(id, domain.ApplicationStatus(req.Status), userID, req.Notes)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	// Let the candidate know their application moved.
	if app.Candidate != nil && app.Candidate.User != nil && app.Job != nil && app.Job.Company != nil {
		h.notifyMail(domain.MailMessage{
			Type: "application_status",
			To:   app.Candidate.User.Email,
			Data: domain.ApplicationStatusMailData{
				Name:        app.Candidate.User.Name,
				JobTitle:    app.Job.Title,
				CompanyName: app.Job.Company.CompanyName,
				Status:      app.Status,
			},
		})
	}

	h.successResponse(w, r, "application status updated", app)
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid application id")
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.service.DeleteApplication(id, userID); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "application withdrawn", nil)
}
