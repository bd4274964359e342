package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.GetAnalytics()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "analytics retrieved", analytics)
}

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "users retrieved", users)
}

func (h *Handler) GetAllCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListAllCompanies()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "companies retrieved", companies)
}

func (h *Handler) GetPendingCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListPendingCompanies()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "pending companies retrieved", companies)
}

func (h *Handler) companyIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *Handler) ApproveCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyIDParam(r)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid company id")
		return
	}

	profile, err := h.service.ApproveCompany(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.notifyCompanyApproval(profile, true)

	h.successResponse(w, r, "company approved", profile)
}

func (h *Handler) RejectCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyIDParam(r)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid company id")
		return
	}

	profile, err := h.service.RejectCompany(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.notifyCompanyApproval(profile, false)

	h.successResponse(w, r, "company rejected", profile)
}

func (h *Handler) notifyCompanyApproval(profile *domain.CompanyProfile, approved bool) {
	if profile.User == nil {
		return
	}
	h.notifyMail(domain.MailMessage{
		Type: "company_approval",
		To:   profile.User.Email,
		Data: domain.CompanyApprovalMailData{
			Name:        profile.User.Name,
			CompanyName: profile.CompanyName,
			Approved:    approved,
		},
	})
}

func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs retrieved", jobs)
}

func (h *Handler) GetAllApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.ListAllApplications()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications retrieved", apps)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "user deleted", nil)
}

func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyIDParam(r)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid company id")
		return
	}

	if err := h.service.DeleteCompany(id); err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "company deleted", nil)
}
