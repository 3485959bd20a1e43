package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set of a session token.
//
// It combines the standard registered claims (sub holds the user ID) with
// the public profile fields of the user, so that gated handlers can resolve
// the caller without re-querying credentials.
type TokenClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
	Fullname string `json:"fullname,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// Token wraps a session JWT with convenience accessors for authentication
// flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be carried in the loginToken cookie.
// Identity is the caller identity decoded from the claims; it is populated
// after a successful parse and spares callers repeated claim inspection.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Only the compact string form is meaningful outside the server
	// process, so the field is excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the user identity extracted from the claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
