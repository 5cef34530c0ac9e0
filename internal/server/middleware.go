package server

import (
	"time"

	"clashberry_api/internal/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey  = "requestid"
	slowThreshold = 500 * time.Millisecond
)

// RequestID tags every request with a uuid, echoed in the X-Request-ID header
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// AccessLogger logs every request through zerolog. Fast successful requests
// are logged at debug; slow or failed ones at info or above.
// Errors escaping the chain are resolved through the app error handler first.
func AccessLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := zerolog.DebugLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= fiber.StatusBadRequest:
			level = zerolog.InfoLevel
		case latency >= slowThreshold:
			level = zerolog.InfoLevel
		}

		log.WithLevel(level).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Msg("HTTP request")

		return nil
	}
}

// captureStackTrace is the recover middleware hook for panics
func captureStackTrace(c *fiber.Ctx, e interface{}) {
	log.Error().
		Str("request_id", requestID(c)).
		Str("path", c.Path()).
		Interface("panic", e).
		Msg("Recovered from panic in handler")
	monitoring.CapturePanic(e, map[string]string{
		"route":      c.Route().Path,
		"request_id": requestID(c),
	})
}
