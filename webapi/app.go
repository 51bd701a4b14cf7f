// Package webapi exposes the application over a JSON HTTP API.
package webapi

import (
	"time"

	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/webapi/account"
	"github.com/amirasaad/networth/webapi/auth"
	"github.com/amirasaad/networth/webapi/category"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/family"
	"github.com/amirasaad/networth/webapi/snapshot"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with every route registered.
func NewApp(a *app.App) *fiber.App {
	f := fiber.New(fiber.Config{
		AppName: "networth",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "Request failed", err, status)
		},
	})

	maxRequests, window := 100, time.Minute
	if rl := a.Config.RateLimit; rl != nil {
		maxRequests, window = rl.MaxRequests, rl.Window
	}
	f.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil, "Rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))
	f.Use(recover.New())
	if a.Config.Env != "test" {
		f.Use(logger.New())
	}

	f.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})
	if a.Deps.Metrics != nil {
		f.Get("/metrics", adaptor.HTTPHandler(a.Deps.Metrics))
	}

	jwt := a.Config.Auth.Jwt
	auth.Routes(f, a.AuthService, a.UserService, jwt)
	category.Routes(f)
	account.Routes(f, a.LedgerService, jwt)
	snapshot.Routes(f, a.SnapshotService, a.LedgerService, jwt)
	family.Routes(f, a.FamilyService, jwt)

	return f
}
