package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"person-api/internal/api/handlers"
	"person-api/internal/api/middleware"
	"person-api/internal/auth"
	"person-api/internal/metrics"
	"person-api/internal/services"
)

// HealthChecker reports whether the storage behind the API is reachable.
type HealthChecker func(ctx context.Context) error

// Options wires the dependencies of the HTTP surface.
type Options struct {
	PersonService  services.PersonServiceContract
	Validator      services.Validator
	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	Credentials    auth.CredentialProvider // nil disables authentication on /api/person
	Realm          string
	RequestTimeout time.Duration
	Health         HealthChecker
}

// NewApp builds the fiber application serving the person API.
func NewApp(opts Options) *fiber.App {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:               "person-api",
		ErrorHandler:          handlers.ErrorHandler(opts.Logger),
		DisableStartupMessage: true,
	})

	app.Use(
		middleware.RequestID(),
		middleware.AccessLog(opts.Logger),
	)
	// Metrics sit outside recover so panics are counted as 500s.
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
	}
	app.Use(recover.New())
	if opts.Metrics != nil {
		app.Get("/metrics", opts.Metrics.Handler())
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"service": "person-api",
			"links": fiber.Map{
				"people":  "/api/person",
				"health":  "/health",
				"metrics": "/metrics",
			},
		})
	})
	app.Get("/health", healthHandler(opts.Health))

	people := app.Group("/api/person")
	if opts.Credentials != nil {
		people.Use(middleware.BasicAuth(opts.Credentials, opts.Realm))
	} else {
		opts.Logger.Warn().Msg("authentication disabled for /api/person")
	}

	personHandler := handlers.NewPersonHandler(opts.PersonService, opts.Validator, opts.Logger, opts.RequestTimeout)
	handlers.RegisterPersonRoutes(people, personHandler)

	return app
}

func healthHandler(check HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "DOWN",
					"error":  err.Error(),
				})
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "UP"})
	}
}
