// Package webapi assembles the HTTP surface: shared middleware, the uniform
// error boundary, and the reporting routes.
package webapi

import (
	"errors"
	"strings"

	"github.com/courtside/ledger/pkg/app"
	"github.com/courtside/ledger/webapi/common"
	reportweb "github.com/courtside/ledger/webapi/report"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with the shared middleware stack and routes.
// Any failure escaping a handler, panics included, is normalized to a
// problem-details response here; nothing propagates raw to the transport.
func SetupApp(app *app.App) *fiber.App {
	reportSvc := app.ReportService
	authSvc := app.AuthService

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := common.ErrorToStatusCode(err)
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	// Rate limiting keyed by client IP, honoring proxy forwarding headers.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too Many Requests",
				"rate limit exceeded",
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Courtside ledger API is running! 🚀")
		},
	)

	reportweb.Routes(fiberApp, reportSvc, authSvc, app.Config)
	return fiberApp
}
