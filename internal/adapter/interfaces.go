// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the DevConnector API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx answers are returned as [*APIError], which wraps a status sentinel
// ([ErrBadRequest], [ErrUnauthorized], [ErrNotFound], ...) for [errors.Is]
// and keeps the server's field-keyed body for display next to form fields.
package adapter

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// DevConnector API. Methods that need authentication send the token set by
// SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token, without the "Bearer " prefix, for
	// all subsequent authenticated requests. An empty token logs out.
	SetToken(token string)

	// Token returns the token currently stored in the adapter.
	Token() string

	// Register sends the registration form as entered. No client-side
	// validation happens; field errors come back inside an [*APIError].
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a bearer token. The returned token has
	// the "Bearer " prefix stripped.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	CurrentUser(ctx context.Context) (models.CurrentUser, error)

	GetCurrentProfile(ctx context.Context) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	SaveProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error)
	AddExperience(ctx context.Context, req models.ExperienceRequest) (models.Profile, error)
	DeleteExperience(ctx context.Context, expID string) (models.Profile, error)
	AddEducation(ctx context.Context, req models.EducationRequest) (models.Profile, error)
	DeleteEducation(ctx context.Context, eduID string) (models.Profile, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	LikePost(ctx context.Context, postID string) (models.Post, error)
	UnlikePost(ctx context.Context, postID string) (models.Post, error)
	AddComment(ctx context.Context, postID string, req models.PostRequest) (models.Post, error)
	DeleteComment(ctx context.Context, postID, commentID string) (models.Post, error)

	// Version returns the build metadata reported by GET /api/version.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
