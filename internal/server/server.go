package server

import (
	"errors"
	"time"

	"clashberry_api/internal/coc"
	"clashberry_api/internal/config"
	"clashberry_api/internal/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Options configures the HTTP application
type Options struct {
	HTTP config.ServerConfig
	// Now is the clock used for time remaining and health timestamps; defaults to time.Now
	Now func() time.Time
}

// New builds the Fiber application with all routes registered
func New(api coc.CocAPI, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               ServiceName,
		ReadTimeout:           opts.HTTP.ReadTimeout,
		WriteTimeout:          opts.HTTP.WriteTimeout,
		IdleTimeout:           opts.HTTP.IdleTimeout,
		UnescapePath:          true,
		Immutable:             true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(RequestID())
	app.Use(AccessLogger())
	app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: captureStackTrace,
	}))
	app.Use(cors.New())

	h := NewHandler(api, opts.Now)

	app.Get("/", h.Index)
	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(monitoring.Registry, promhttp.HandlerOpts{})))

	apiGroup := app.Group("/api")
	apiGroup.Get("/war/:clanTag", h.War)
	apiGroup.Get("/clan/:clanTag", h.Clan)

	// Catch-all, must be LAST
	app.Use(notFound)

	return app
}

func notFound(c *fiber.Ctx) error {
	return respondError(c, fiber.StatusNotFound, CodeNotFound, "Endpoint not found", nil)
}

// errorHandler maps anything escaping a handler to the framework-level codes
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
		return notFound(c)
	}

	log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("path", c.Path()).
		Msg("Unhandled error")
	monitoring.CaptureError(err, map[string]string{
		"route":      c.Route().Path,
		"request_id": requestID(c),
	})
	return respondError(c, fiber.StatusInternalServerError, CodeInternalError, "Internal server error", nil)
}
