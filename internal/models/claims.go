package models

import "github.com/golang-jwt/jwt/v5"

// Claims identifies the operator behind a catalog write.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}
