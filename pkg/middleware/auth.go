// Package middleware holds fiber middleware shared by the HTTP routes.
package middleware

import (
	"errors"
	"strings"

	"github.com/amirasaad/networth/pkg/config"
	authsvc "github.com/amirasaad/networth/pkg/service/auth"
	"github.com/amirasaad/networth/pkg/session"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const problemJSON = "application/problem+json"

// ContextKey is the fiber local holding the verified *jwt.Token.
const ContextKey = "user"

// JwtProtected rejects requests without a valid HS256 bearer token.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:   ContextKey,
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) ||
		strings.EqualFold(err.Error(), jwtware.ErrJWTMissingOrMalformed.Error()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"type":   "about:blank",
			"title":  "Missing or malformed JWT",
			"status": fiber.StatusBadRequest,
		}, problemJSON)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  "Invalid or expired JWT",
		"status": fiber.StatusUnauthorized,
	}, problemJSON)
}

// Session reads the caller's session from the token JwtProtected stored.
func Session(c *fiber.Ctx) (session.Session, error) {
	token, ok := c.Locals(ContextKey).(*jwt.Token)
	if !ok {
		return session.Session{}, session.ErrNoSession
	}
	return authsvc.SessionFromToken(token)
}
