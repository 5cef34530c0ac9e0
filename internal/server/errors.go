package server

import (
	"clashberry_api/internal/app"
	"clashberry_api/internal/monitoring"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned in the "error" field of every failure body
const (
	CodeClanNotFound  = "clan_not_found"
	CodePrivateWarLog = "private_war_log"
	CodeNotInWar      = "not_in_war"
	CodeAPIError      = "api_error"
	CodeServerError   = "server_error"
	CodeInvalidTag    = "invalid_tag"
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"

	codeOK = "ok"
)

// respondError writes an ErrorResponse with the given status
func respondError(c *fiber.Ctx, status int, code, message string, clan *app.ClanPreview) error {
	recordResponse(c, code)
	return c.Status(status).JSON(app.ErrorResponse{
		Error:   code,
		Message: message,
		Clan:    clan,
	})
}

// respondOK writes a 200 JSON body
func respondOK(c *fiber.Ctx, body any) error {
	recordResponse(c, codeOK)
	return c.JSON(body)
}

func recordResponse(c *fiber.Ctx, code string) {
	route := c.Route().Path
	if code == CodeNotFound {
		route = "unmatched"
	}
	monitoring.ResponseCount.WithLabelValues(route, code).Inc()
}
