package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/snipvault/snipvault/internal/domain/model"
)

const testSecret = "test-signing-secret"

func testHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func newTestAuthService(t *testing.T, password string) *AuthService {
	t.Helper()

	svc, err := NewAuthService(testHash(t, password), testSecret)
	require.NoError(t, err)

	return svc
}

func TestNewAuthService_MissingPasswordHash(t *testing.T) {
	_, err := NewAuthService("", testSecret)
	assert.Error(t, err)
}

func TestNewAuthService_MissingSigningKey(t *testing.T) {
	_, err := NewAuthService("some-hash", "")
	assert.Error(t, err)
}

func TestVerifyPassword_Correct(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	ok, err := svc.VerifyPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Wrong(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	ok, err := svc.VerifyPassword("hunter3")
	require.NoError(t, err, "a wrong password is a normal false, not an error")
	assert.False(t, ok)
}

func TestVerifyPassword_Empty(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	ok, err := svc.VerifyPassword("")
	assert.ErrorIs(t, err, ErrPasswordRequired)
	assert.False(t, ok)
}

func TestToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	token, err := svc.IssueToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, model.AccessGranted, claims.Access)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestToken_Expiry(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueToken()
	require.NoError(t, err)

	// Accepted for any time in [T, T+7d).
	for _, offset := range []time.Duration{0, time.Hour, TokenTTL - time.Second} {
		svc.now = func() time.Time { return issuedAt.Add(offset) }
		_, err := svc.VerifyToken(token)
		assert.NoError(t, err, "token should be valid at T+%s", offset)
	}

	// Rejected at and after T+7d.
	for _, offset := range []time.Duration{TokenTTL, TokenTTL + time.Hour, 30 * 24 * time.Hour} {
		svc.now = func() time.Time { return issuedAt.Add(offset) }
		_, err := svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token should be expired at T+%s", offset)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	token, err := svc.IssueToken()
	require.NoError(t, err)

	// Flip one byte in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.VerifyToken(string(tampered))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_ForeignSecret(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	foreign, err := NewAuthService(testHash(t, "hunter2"), "a-different-secret")
	require.NoError(t, err)

	token, err := foreign.IssueToken()
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc := newTestAuthService(t, "hunter2")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}
