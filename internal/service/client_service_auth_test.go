package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/mock"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewClientAuthService(mockSessions, mockAdapter, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockSessions
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("dev-connector", models.User{ID: "u1", Name: "Ada"}, ttl, "secret")
	require.NoError(t, err)
	return token.SignedString
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_PassesFormUnchanged(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	req := models.RegisterRequest{Name: " A ", Email: "not-an-email", Password: "1", Password2: "2"}
	mockAdapter.EXPECT().Register(ctx, req).Return(models.User{ID: "u1"}, nil)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestClientAuthService_Register_FieldErrors(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	apiErr := &adapter.APIError{Status: 400, Fields: map[string]string{
		"email":    "Email already exists",
		"password": "Password must be at least 6 characters",
	}}
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, apiErr)

	_, err := svc.Register(ctx, models.RegisterRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)

	var fe validators.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Email already exists", fe["email"])
	assert.Equal(t, "Password must be at least 6 characters", fe["password"])
}

func TestClientAuthService_Register_ServerDown(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, errors.New("dial tcp: connection refused"))

	_, err := svc.Register(ctx, models.RegisterRequest{})
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()
	fixed := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	req := models.LoginRequest{Email: "ada@example.com", Password: "secret1"}
	user := models.CurrentUser{ID: "u1", Name: "Ada", Email: req.Email}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).Return("tok", nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(user, nil),
		mockSessions.EXPECT().SaveSession(ctx, models.Session{Token: "tok", User: user, SavedAt: fixed}).Return(nil),
	)

	session, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, user, session.User)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	apiErr := &adapter.APIError{Status: 400, Fields: map[string]string{"password": "Password incorrect"}}
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("", apiErr)

	_, err := svc.Login(ctx, models.LoginRequest{})

	var fe validators.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Password incorrect", fe["password"])
}

func TestClientAuthService_Login_CurrentUserFailsDropsToken(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("tok", nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(models.CurrentUser{}, &adapter.APIError{Status: 401}),
		mockAdapter.EXPECT().SetToken(""),
	)

	_, err := svc.Login(ctx, models.LoginRequest{})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_Login_SaveFailureIsNotFatal(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("tok", nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockAdapter.EXPECT().CurrentUser(ctx).Return(models.CurrentUser{ID: "u1"}, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full"))

	session, err := svc.Login(ctx, models.LoginRequest{})
	require.NoError(t, err)
	assert.True(t, session.Valid())
}

// ── Restore / Logout ─────────────────────────────────────────────────────────

func TestClientAuthService_Restore_NoSession(t *testing.T) {
	svc, _, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockSessions.EXPECT().LoadSession(ctx).Return(models.Session{}, store.ErrNoSession)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Restore_ValidToken(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	token := signedToken(t, time.Hour)
	saved := models.Session{Token: token, User: models.CurrentUser{ID: "u1"}}

	mockSessions.EXPECT().LoadSession(ctx).Return(saved, nil)
	mockAdapter.EXPECT().SetToken(token)

	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, session)
}

func TestClientAuthService_Restore_ExpiredTokenClearsSession(t *testing.T) {
	svc, _, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	token := signedToken(t, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	mockSessions.EXPECT().LoadSession(ctx).Return(models.Session{Token: token, User: models.CurrentUser{ID: "u1"}}, nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_Restore_GarbageToken(t *testing.T) {
	svc, _, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockSessions.EXPECT().LoadSession(ctx).Return(models.Session{Token: "garbage", User: models.CurrentUser{ID: "u1"}}, nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}
