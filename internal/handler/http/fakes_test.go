package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "valid.jwt.token"
	testUserID = "0195f0c2-0000-7000-8000-000000000001"
)

// fakeAuthService implements service.AuthService. ParseToken accepts
// testToken unless parseTokenFn is set.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn  func(ctx context.Context, userID string) (models.CurrentUser, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerUserFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: testUserID, SignedString: tokenString}, nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, userID string) (models.CurrentUser, error) {
	return f.currentUserFn(ctx, userID)
}

type fakeProfileService struct {
	getProfileFn       func(ctx context.Context, userID string) (models.Profile, error)
	getByHandleFn      func(ctx context.Context, handle string) (models.Profile, error)
	listProfilesFn     func(ctx context.Context) ([]models.Profile, error)
	saveProfileFn      func(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, error)
	deleteAccountFn    func(ctx context.Context, userID string) error
	addExperienceFn    func(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error)
	deleteExperienceFn func(ctx context.Context, userID, expID string) (models.Profile, error)
	addEducationFn     func(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error)
	deleteEducationFn  func(ctx context.Context, userID, eduID string) (models.Profile, error)
}

func (f *fakeProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getProfileFn(ctx, userID)
}

func (f *fakeProfileService) GetProfileByHandle(ctx context.Context, handle string) (models.Profile, error) {
	return f.getByHandleFn(ctx, handle)
}

func (f *fakeProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return f.listProfilesFn(ctx)
}

func (f *fakeProfileService) SaveProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, error) {
	return f.saveProfileFn(ctx, userID, req)
}

func (f *fakeProfileService) DeleteAccount(ctx context.Context, userID string) error {
	return f.deleteAccountFn(ctx, userID)
}

func (f *fakeProfileService) AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error) {
	return f.addExperienceFn(ctx, userID, req)
}

func (f *fakeProfileService) DeleteExperience(ctx context.Context, userID, expID string) (models.Profile, error) {
	return f.deleteExperienceFn(ctx, userID, expID)
}

func (f *fakeProfileService) AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error) {
	return f.addEducationFn(ctx, userID, req)
}

func (f *fakeProfileService) DeleteEducation(ctx context.Context, userID, eduID string) (models.Profile, error) {
	return f.deleteEducationFn(ctx, userID, eduID)
}

type fakePostService struct {
	listPostsFn     func(ctx context.Context) ([]models.Post, error)
	getPostFn       func(ctx context.Context, postID string) (models.Post, error)
	createPostFn    func(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	deletePostFn    func(ctx context.Context, userID, postID string) error
	likePostFn      func(ctx context.Context, userID, postID string) (models.Post, error)
	unlikePostFn    func(ctx context.Context, userID, postID string) (models.Post, error)
	addCommentFn    func(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error)
	deleteCommentFn func(ctx context.Context, userID, postID, commentID string) (models.Post, error)
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.listPostsFn(ctx)
}

func (f *fakePostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return f.getPostFn(ctx, postID)
}

func (f *fakePostService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	return f.createPostFn(ctx, userID, req)
}

func (f *fakePostService) DeletePost(ctx context.Context, userID, postID string) error {
	return f.deletePostFn(ctx, userID, postID)
}

func (f *fakePostService) LikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	return f.likePostFn(ctx, userID, postID)
}

func (f *fakePostService) UnlikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	return f.unlikePostFn(ctx, userID, postID)
}

func (f *fakePostService) AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error) {
	return f.addCommentFn(ctx, userID, postID, req)
}

func (f *fakePostService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error) {
	return f.deleteCommentFn(ctx, userID, postID, commentID)
}

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) models.AppBuildInfo {
	return f.info
}

// newTestRouter wires the fakes into a full router. Nil fakes are replaced
// by empty ones so that tests only set what they exercise.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{info: models.NewAppBuildInfo("test", "today", "abc")}
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// do sends a request through router. authed adds the test bearer token.
func do(t *testing.T, router http.Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var m map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), rec.Body.String())
	return m
}
