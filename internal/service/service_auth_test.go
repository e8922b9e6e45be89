package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		PasswordHashCost: bcrypt.MinCost,
		TokenSignKey:     "test-key",
		TokenIssuer:      "dev-connector",
		TokenDuration:    time.Hour,
	}
}

func TestAuthService_RegisterUser(t *testing.T) {
	var stored models.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	user, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name: "Ada", Email: " Ada@Example.com ", Password: "secret1", Password2: "secret1",
	})
	require.NoError(t, err)

	assert.True(t, utils.IsUUID(user.ID))
	assert.Equal(t, "Ada@Example.com", user.Email)
	assert.Equal(t, utils.GravatarURL("ada@example.com"), user.Avatar)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestAuthValidationService_RegisterUser_PasswordOverBcryptLimit(t *testing.T) {
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			t.Fatal("user must not be stored")
			return user, nil
		},
	}
	svc := NewAuthValidationService().Wrap(NewAuthService(repo, testAuthConfig(), logger.Nop()))

	password := strings.Repeat("密", 25)
	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: password, Password2: password,
	})

	var fe validators.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, validators.FieldErrors{validators.FieldPassword: "Password is too long"}, fe)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			if email != "ada@example.com" {
				return models.User{}, store.ErrUserNotFound
			}
			return models.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())
	ctx := context.Background()

	user, err := svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u1", Name: "Ada", Avatar: "//a"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)
	assert.Equal(t, "Ada", parsed.Name)

	other := NewAuthService(&fakeUserRepository{}, config.Auth{
		TokenSignKey: "other-key", TokenIssuer: "dev-connector", TokenDuration: time.Hour,
	}, logger.Nop())
	_, err = other.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{ID: userID, Name: "Ada", Email: "ada@example.com", Avatar: "//a", PasswordHash: "x"}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	current, err := svc.CurrentUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.CurrentUser{ID: "u1", Name: "Ada", Email: "ada@example.com", Avatar: "//a"}, current)
}

func TestAuthValidationService_StopsInvalidRequests(t *testing.T) {
	called := false
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			called = true
			return user, nil
		},
	}
	svc := NewAuthValidationService().Wrap(NewAuthService(repo, testAuthConfig(), logger.Nop()))

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Name: "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.False(t, called)

	var fe validators.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, validators.FieldEmail)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "x"})
	assert.True(t, strings.Contains(err.Error(), "password"))
}
