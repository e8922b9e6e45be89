package http

import (
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/app"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) profileTest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgProfileWorks}, http.StatusOK)
}

func (h *Handler) getCurrentProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getProfileByHandle(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfileByHandle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getProfileByUserID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfile(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.services.ProfileService.SaveProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ProfileService.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Msg("account deleted")
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) addExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ExperienceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.services.ProfileService.AddExperience(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.DeleteExperience(r.Context(), userID, chi.URLParam(r, "exp_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) addEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.EducationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.services.ProfileService.AddEducation(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.DeleteEducation(r.Context(), userID, chi.URLParam(r, "edu_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
