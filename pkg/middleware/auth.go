// Package middleware provides the authorization gate applied to every
// financial endpoint: requests without a verifiable bearer token are
// rejected with 401 before any handler runs.
package middleware

import (
	"github.com/courtside/ledger/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected returns middleware that verifies the request's bearer token
// against the configured signing secret and stores the verified token in
// c.Locals("user") for handlers to resolve the principal from.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// jwtError maps every token failure, missing or malformed alike, to 401.
// No principal means unauthorized; the response shape follows RFC 9457.
func jwtError(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  "Unauthorized",
		"status": fiber.StatusUnauthorized,
		"detail": err.Error(),
	})
}
