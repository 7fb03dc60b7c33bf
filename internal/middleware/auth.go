package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pitchlab/matchdb/internal/types"
)

// AuthUser validates the Authorization bearer token and resolves the caller
// identity. The token is an HS256 JWT (Supabase-style); the subject claim is
// the owner id for every match operation. Handlers must take the identity
// from locals, never from request bodies.
func AuthUser(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: err.Error(),
				Type:    "matches.authorization",
			}
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid token: %v", err),
				Type:    "matches.authorization",
			}
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid token claims",
				Type:    "matches.authorization",
			}
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Token missing subject claim",
				Type:    "matches.authorization",
			}
		}

		c.Locals("userID", sub)
		if email, ok := claims["email"].(string); ok {
			c.Locals("userEmail", email)
		}

		return c.Next()
	}
}

// bearerToken extracts the credential from the Authorization header
func bearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return "", fmt.Errorf("Authorization header not found")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", fmt.Errorf("Authorization header is not a bearer token")
	}

	return strings.TrimPrefix(auth, prefix), nil
}
