package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (h *Handler) GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	profile, err := h.service.GetCompanyByUserID(userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "company profile retrieved", profile)
}

func (h *Handler) CreateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyName string `json:"companyName" validate:"required"`
		Description string `json:"description"`
		Website     string `json:"website" validate:"omitempty,url"`
		Location    string `json:"location"`
		LogoURL     string `json:"logoUrl" validate:"omitempty,url"`
		Industry    string `json:"industry"`
		CompanySize string `json:"companySize"`
		FoundedYear int32  `json:"foundedYear"`
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

	profile := &domain.CompanyProfile{
		CompanyName: req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		FoundedYear: req.FoundedYear,
	}

	if err := h.service.CreateCompanyProfile(userID, profile); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "company_profiles_user_id_key":
			h.errorResponse(w, r, http.StatusConflict, "company profile already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.createdResponse(w, r, "company profile created", profile)
}

func (h *Handler) UpdateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.CompanyProfileUpdate
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// The caller may only reach their own profile: resolve it from their
	// identity, never from the payload.
	profile, err := h.service.GetCompanyByUserID(userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	updated, err := h.service.UpdateCompanyProfile(profile.ID, &req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "company profile updated", updated)
}

// ListApprovedCompanies is the public company directory.
func (h *Handler) ListApprovedCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListApprovedCompanies()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "companies retrieved", companies)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid company id")
		return
	}

	profile, err := h.service.GetCompanyByID(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "company retrieved", profile)
}
