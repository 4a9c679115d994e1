package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by every issued JWT.
// In addition to the registered claims (sub holds the user id) the token
// binds the user's email, mirroring what API clients need to identify the
// caller without an extra lookup.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the authenticated user's email address.
	Email string `json:"email"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header. UserID and Email are parsed copies of the corresponding claims,
// populated during generation or validation so that callers do not need to
// re-parse the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Email is the address extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
