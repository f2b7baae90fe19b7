package model

import "github.com/golang-jwt/jwt/v5"

// AccessGranted is the fixed value of the Access claim carried by every
// issued token. There are no roles or scopes to differentiate.
const AccessGranted = "granted"

// Claims is the decoded payload of a verified access token.
type Claims struct {
	Access string `json:"access"`
	jwt.RegisteredClaims
}
