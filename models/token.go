package models

import "github.com/golang-jwt/jwt/v5"

// Token bundles a parsed JWT with the user identity extracted from its
// subject claim. The embedded RegisteredClaims let the jwt library validate
// issuer and expiry directly on this type.
type Token struct {
	jwt.RegisteredClaims

	// Token is the parsed token object, populated after validation.
	Token *jwt.Token `json:"-"`

	// SignedString is the compact serialized form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// UserID is the authenticated principal the token was issued for.
	UserID int64 `json:"-"`
}
