package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestJWTSecret is the HS256 secret shared between test tokens and the
// service under test.
const TestJWTSecret = "matchdb-test-secret"

// SignTestToken mints a bearer token for the given user, the way the
// identity provider would.
func SignTestToken(t *testing.T, secret, userID, email string) string {
	t.Helper()
	return signToken(t, secret, userID, email, time.Now().Add(time.Hour))
}

// SignExpiredToken mints a token whose expiry is already in the past.
func SignExpiredToken(t *testing.T, secret, userID string) string {
	t.Helper()
	return signToken(t, secret, userID, "", time.Now().Add(-time.Hour))
}

func signToken(t *testing.T, secret, userID, email string, expiry time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": userID,
		"exp": expiry.Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}

	return signed
}
