package handler

import (
	"net/http"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (h *Handler) GetCandidateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	profile, err := h.service.GetCandidateByUserID(userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "candidate profile retrieved", profile)
}

func (h *Handler) UpdateCandidateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.CandidateProfileUpdate
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	profile, err := h.service.UpdateCandidateProfile(userID, &req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "candidate profile updated", profile)
}
