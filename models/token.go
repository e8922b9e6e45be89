package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header or stored in the client session.
//
// UserID is the "sub" claim: the id of the user the token was issued for.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Name and Avatar mirror the public user snapshot carried in the token,
	// so clients can show who is logged in without an extra request.
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// BearerPrefix is prepended to the signed token in login responses and
// Authorization headers.
const BearerPrefix = "Bearer "
