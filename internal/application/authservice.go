// Package application contains the use-case services: authentication
// (password verification, token issuance and verification) and snippet
// management over the persistence port.
package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/snipvault/snipvault/internal/domain/model"
)

// TokenTTL is the fixed lifetime of an issued access token.
const TokenTTL = 7 * 24 * time.Hour

// Sentinel errors returned by AuthService.
var (
	// ErrPasswordRequired indicates a login attempt with no password at all.
	// A wrong password is not an error; VerifyPassword reports it as false.
	ErrPasswordRequired = errors.New("password is required")

	// ErrTokenInvalid covers every failed token verification: malformed,
	// wrong signature, or expired. Callers must not distinguish further.
	ErrTokenInvalid = errors.New("invalid token")
)

// AuthService verifies the operator password and issues and verifies the
// signed access tokens gating every snippet operation. Both secrets are
// read-only after construction; the service is safe for concurrent use.
type AuthService struct {
	passwordHash []byte
	signingKey   []byte
	now          func() time.Time
}

// NewAuthService creates an AuthService from the bcrypt hash of the operator
// password and the HS256 signing key. Either secret being empty is a startup
// error; issuance must never discover a missing key per-request.
func NewAuthService(passwordHash, signingKey string) (*AuthService, error) {
	if passwordHash == "" {
		return nil, errors.New("password hash must not be empty")
	}
	if signingKey == "" {
		return nil, errors.New("signing key must not be empty")
	}

	return &AuthService{
		passwordHash: []byte(passwordHash),
		signingKey:   []byte(signingKey),
		now:          time.Now,
	}, nil
}

// VerifyPassword compares the submitted password against the stored hash.
// An empty submission returns ErrPasswordRequired before any hashing; a
// mismatch is a normal (false, nil) result.
func (s *AuthService) VerifyPassword(submitted string) (bool, error) {
	if submitted == "" {
		return false, ErrPasswordRequired
	}

	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(submitted))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password hash: %w", err)
	}

	return true, nil
}

// IssueToken produces a signed access token valid for TokenTTL. Called only
// after VerifyPassword reports a match.
func (s *AuthService) IssueToken() (string, error) {
	issuedAt := s.now()

	claims := model.Claims{
		Access: model.AccessGranted,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the token's signature and expiry and returns its claim
// set. Every failure mode collapses into ErrTokenInvalid; a missing token is
// the transport layer's concern and never reaches this method.
func (s *AuthService) VerifyToken(tokenString string) (model.Claims, error) {
	var claims model.Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return model.Claims{}, ErrTokenInvalid
	}

	return claims, nil
}
