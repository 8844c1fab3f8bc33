package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind separates access tokens from refresh tokens so that one can
// never be presented in place of the other.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Claims is the JWT claim set issued by the server. The subject carries
// the user ID.
type Claims struct {
	jwt.RegisteredClaims

	// DeviceID is the device the token was issued for.
	DeviceID string `json:"did"`

	// Kind is either [AccessToken] or [RefreshToken].
	Kind TokenKind `json:"knd"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and DeviceID are parsed copies of the claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	UserID   string    `json:"-"`
	DeviceID string    `json:"-"`
	Kind     TokenKind `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
