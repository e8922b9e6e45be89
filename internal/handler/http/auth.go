package http

import (
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/app"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

func (h *Handler) usersTest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgUsersWorks}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Token:   models.BearerPrefix + token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// decodeBody reads the JSON body into dst. On failure it answers 400 and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorBody{app.KeyError: app.MsgInvalidJSON}, http.StatusBadRequest)
		return false
	}
	return true
}

// userIDFromRequest returns the caller id put into the context by the auth
// middleware. Without it the request is answered with 401.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in authenticated request context")
		http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
	}
	return userID, ok
}
