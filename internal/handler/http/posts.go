package http

import (
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/app"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-chi/chi/v5"
)

// The comment routes word a missing post differently from the rest.
var commentPostNotFound = overrideBody(store.ErrPostNotFound, app.KeyPostNotFound, app.MsgPostsWasNotFound)

func (h *Handler) postsTest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgPostsWorks}, http.StatusOK)
}

// listPosts answers 404 whenever the feed cannot be read. An empty feed is
// an empty array.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing posts failed")
		utils.WriteJSON(w, errorBody{app.KeyNoPostsFound: app.MsgNoPostsFound}, http.StatusNotFound)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, overrideBody(store.ErrPostNotFound, app.KeyNoPostFound, app.MsgNoPostFoundWithID))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.PostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	post, err := h.services.PostService.LikePost(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) unlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	post, err := h.services.PostService.UnlikePost(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.PostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.services.PostService.AddComment(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, commentPostNotFound)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	post, err := h.services.PostService.DeleteComment(r.Context(), userID, chi.URLParam(r, "id"), chi.URLParam(r, "comment_id"))
	if err != nil {
		writeError(w, r, err, commentPostNotFound)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
