package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if len(token) >= len(models.BearerPrefix) && strings.EqualFold(token[:len(models.BearerPrefix)], models.BearerPrefix) {
		token = strings.TrimSpace(token[len(models.BearerPrefix):])
	}
	h.token = token
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) authRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", models.BearerPrefix+h.token)
	}
	return req
}

// Register implements [ServerAdapter]. It POSTs the form to
// POST /api/users/register and returns the created user.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/api/users/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. The token in the response body carries
// the "Bearer " prefix, which is stripped before it is returned.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var loginResp models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/users/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(loginResp.Token)
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	return token, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.CurrentUser, error) {
	var user models.CurrentUser
	if err := h.get(h.authRequest(ctx), "/api/users/current", &user); err != nil {
		return models.CurrentUser{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) GetCurrentProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := h.get(h.authRequest(ctx), "/api/profile", &profile); err != nil {
		return models.Profile{}, fmt.Errorf("get current profile: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := h.get(h.request(ctx), "/api/profile/all", &profiles); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (h *httpServerAdapter) SaveProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error) {
	var profile models.Profile
	if err := h.post(h.authRequest(ctx), "/api/profile", req, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) AddExperience(ctx context.Context, req models.ExperienceRequest) (models.Profile, error) {
	var profile models.Profile
	if err := h.post(h.authRequest(ctx), "/api/profile/experience", req, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("add experience: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) DeleteExperience(ctx context.Context, expID string) (models.Profile, error) {
	var profile models.Profile
	if err := h.delete(h.authRequest(ctx), "/api/profile/experience/"+url.PathEscape(expID), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("delete experience: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) AddEducation(ctx context.Context, req models.EducationRequest) (models.Profile, error) {
	var profile models.Profile
	if err := h.post(h.authRequest(ctx), "/api/profile/education", req, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("add education: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) DeleteEducation(ctx context.Context, eduID string) (models.Profile, error) {
	var profile models.Profile
	if err := h.delete(h.authRequest(ctx), "/api/profile/education/"+url.PathEscape(eduID), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("delete education: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := h.get(h.request(ctx), "/api/posts", &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error) {
	var post models.Post
	if err := h.post(h.authRequest(ctx), "/api/posts", req, &post); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID string) error {
	var result models.SuccessResponse
	if err := h.delete(h.authRequest(ctx), "/api/posts/"+url.PathEscape(postID), &result); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) LikePost(ctx context.Context, postID string) (models.Post, error) {
	var post models.Post
	if err := h.post(h.authRequest(ctx), "/api/posts/like/"+url.PathEscape(postID), nil, &post); err != nil {
		return models.Post{}, fmt.Errorf("like post: %w", err)
	}
	return post, nil
}

func (h *httpServerAdapter) UnlikePost(ctx context.Context, postID string) (models.Post, error) {
	var post models.Post
	if err := h.post(h.authRequest(ctx), "/api/posts/unlike/"+url.PathEscape(postID), nil, &post); err != nil {
		return models.Post{}, fmt.Errorf("unlike post: %w", err)
	}
	return post, nil
}

func (h *httpServerAdapter) AddComment(ctx context.Context, postID string, req models.PostRequest) (models.Post, error) {
	var post models.Post
	if err := h.post(h.authRequest(ctx), "/api/posts/comment/"+url.PathEscape(postID), req, &post); err != nil {
		return models.Post{}, fmt.Errorf("add comment: %w", err)
	}
	return post, nil
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, postID, commentID string) (models.Post, error) {
	var post models.Post
	path := "/api/posts/comment/" + url.PathEscape(postID) + "/" + url.PathEscape(commentID)
	if err := h.delete(h.authRequest(ctx), path, &post); err != nil {
		return models.Post{}, fmt.Errorf("delete comment: %w", err)
	}
	return post, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	if err := h.get(h.request(ctx), "/api/version", &info); err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("server version: %w", err)
	}
	return info, nil
}

func (h *httpServerAdapter) get(req *resty.Request, path string, result any) error {
	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) post(req *resty.Request, path string, body, result any) error {
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.SetResult(result).Post(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) delete(req *resty.Request, path string, result any) error {
	resp, err := req.SetResult(result).Delete(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}
