package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/models"
	"github.com/golang-jwt/jwt/v5"
)

func testUser() models.User {
	return models.User{
		ID:     "0192f0c4-7b7e-7c4e-9a53-7f4f1b3f0c11",
		Name:   "Ada Lovelace",
		Avatar: "//www.gravatar.com/avatar/abc?s=200&r=pg&d=mm",
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	user := testUser()

	token, err := GenerateJWTToken(issuer, user, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*models.Token)
	if !ok {
		t.Fatal("could not cast claims to models.Token")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != user.ID {
		t.Errorf("expected subject %q, got %s", user.ID, claims.Subject)
	}
	if claims.Name != user.Name {
		t.Errorf("expected name claim %q, got %q", user.Name, claims.Name)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser(), time.Hour, "key"},
		{"empty user id", "iss", models.User{Name: "x"}, time.Hour, "key"},
		{"zero duration", "iss", testUser(), 0, "key"},
		{"empty key", "iss", testUser(), time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"
	user := testUser()

	genToken, err := GenerateJWTToken(issuer, user, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != user.ID {
		t.Errorf("expected userID %s, got %s", user.ID, parsedToken.UserID)
	}
	if parsedToken.Avatar != user.Avatar {
		t.Errorf("expected avatar %s, got %s", user.Avatar, parsedToken.Avatar)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	key := "key"
	valid, _ := GenerateJWTToken("real-issuer", testUser(), time.Hour, key)
	expired, _ := GenerateJWTToken("real-issuer", testUser(), -time.Second, key)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "wrong-key", "real-issuer"},
		{"wrong issuer", valid.SignedString, key, "fake-issuer"},
		{"expired", expired.SignedString, key, "real-issuer"},
		{"malformed", "not.a.token", key, "real-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}

	_, err := ValidateAndParseJWTToken(expired.SignedString, key, "real-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired in chain, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"  Bearer xyz  ", "xyz", false},
		{"Bearer", "", true},
		{"abc.def.ghi", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseUnverifiedJWT(t *testing.T) {
	user := testUser()
	token, err := GenerateJWTToken("iss", user, time.Hour, "whatever")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseUnverifiedJWT(token.SignedString)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != user.ID || parsed.Name != user.Name {
		t.Errorf("unexpected claims: %+v", parsed)
	}

	if _, err := ParseUnverifiedJWT("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
