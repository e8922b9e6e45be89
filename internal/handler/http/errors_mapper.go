package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/app"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
)

// errorBody is the field-keyed JSON body of a failed request.
type errorBody map[string]string

type errorResponse struct {
	status int
	body   errorBody
}

var errorResponseMap = map[error]errorResponse{
	service.ErrWrongPassword: {http.StatusBadRequest, errorBody{app.KeyPassword: app.MsgPasswordIncorrect}},
	service.ErrNotPostOwner:  {http.StatusUnauthorized, errorBody{app.KeyNotAuthorized: app.MsgUserNotAuthorized}},
	service.ErrNoProfiles:    {http.StatusNotFound, errorBody{app.KeyNoProfile: app.MsgNoProfiles}},

	store.ErrEmailAlreadyExists:   {http.StatusBadRequest, errorBody{app.KeyEmail: app.MsgEmailAlreadyExists}},
	store.ErrHandleAlreadyExists:  {http.StatusBadRequest, errorBody{app.KeyHandle: app.MsgHandleAlreadyExists}},
	store.ErrProfileAlreadyExists: {http.StatusBadRequest, errorBody{app.KeyHandle: app.MsgProfileExists}},
	store.ErrAlreadyLiked:         {http.StatusBadRequest, errorBody{app.KeyAlreadyLiked: app.MsgAlreadyLiked}},
	store.ErrNotLiked:             {http.StatusBadRequest, errorBody{app.KeyNotLiked: app.MsgNotLiked}},

	store.ErrUserNotFound:       {http.StatusNotFound, errorBody{app.KeyEmail: app.MsgUserNotFound}},
	store.ErrProfileNotFound:    {http.StatusNotFound, errorBody{app.KeyNoProfile: app.MsgNoProfileForUser}},
	store.ErrExperienceNotFound: {http.StatusNotFound, errorBody{app.KeyExperience: app.MsgExperienceNotFound}},
	store.ErrEducationNotFound:  {http.StatusNotFound, errorBody{app.KeyEducation: app.MsgEducationNotFound}},
	store.ErrPostNotFound:       {http.StatusNotFound, errorBody{app.KeyPostNotFound: app.MsgNoPostFound}},
	store.ErrCommentNotFound:    {http.StatusNotFound, errorBody{app.KeyCommentNotExist: app.MsgCommentNotExists}},
}

var internalError = errorResponse{http.StatusInternalServerError, errorBody{app.KeyError: app.MsgInternalServerError}}

// errorOverride replaces the body answered for target on a single route,
// for example the post-not-found wording of the comment routes.
type errorOverride struct {
	target error
	body   errorBody
}

func overrideBody(target error, key, msg string) errorOverride {
	return errorOverride{target: target, body: errorBody{key: msg}}
}

// responseFromError classifies err. Validation failures are answered with
// their field map as is.
func responseFromError(err error, overrides ...errorOverride) (int, any) {
	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		return http.StatusBadRequest, fieldErrors
	}

	for target, resp := range errorResponseMap {
		if !errors.Is(err, target) {
			continue
		}
		for _, o := range overrides {
			if o.target == target {
				return resp.status, o.body
			}
		}
		return resp.status, resp.body
	}

	return internalError.status, internalError.body
}

// writeError logs err and answers with the status and body it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error, overrides ...errorOverride) {
	log := logger.FromRequest(r)

	status, body := responseFromError(err, overrides...)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
