package server

import (
	"fmt"
	"net/http"
	"time"

	"clashberry_api/internal/coc"
	"clashberry_api/internal/domain/tag"
	"clashberry_api/internal/domain/war"
	"clashberry_api/internal/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	ServiceName    = "ClashBerry API"
	ServiceVersion = "1.0.0"
)

// Handler serves the gateway endpoints. It holds no per-request state.
type Handler struct {
	api coc.CocAPI
	now func() time.Time
}

// NewHandler creates a handler backed by the given Clash API client.
// now defaults to time.Now when nil.
func NewHandler(api coc.CocAPI, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{api: api, now: now}
}

// Index reports service info and the available endpoints
func (h *Handler) Index(c *fiber.Ctx) error {
	return respondOK(c, fiber.Map{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
		"endpoints": []string{
			"/api/war/{clanTag}",
			"/api/clan/{clanTag}",
			"/health",
		},
	})
}

// Health is the monitoring probe
func (h *Handler) Health(c *fiber.Ctx) error {
	return respondOK(c, fiber.Map{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}

// War returns the normalized current war of a clan
func (h *Handler) War(c *fiber.Ctx) error {
	rawTag := c.Params("clanTag")
	if rawTag == "" {
		return respondError(c, fiber.StatusBadRequest, CodeInvalidTag, "Clan tag is required.", nil)
	}
	clanTag := tag.Format(rawTag)
	ctx := c.UserContext()

	clan, err := h.api.GetClan(ctx, clanTag)
	if err != nil {
		if status, ok := coc.StatusCode(err); ok {
			if status == http.StatusNotFound {
				return respondError(c, status, CodeClanNotFound, "Clan not found. Please check the clan tag.", nil)
			}
			return h.apiError(c, clanTag, status, fmt.Sprintf("API Error: %d", status))
		}
		return h.serverError(c, clanTag, err)
	}

	if !clan.IsWarLogPublic {
		return respondError(c, fiber.StatusForbidden, CodePrivateWarLog, "This clan has a private war log.", war.PreviewClan(*clan))
	}

	current, err := h.api.GetCurrentWar(ctx, clanTag)
	if err != nil {
		if status, ok := coc.StatusCode(err); ok {
			return h.apiError(c, clanTag, status, fmt.Sprintf("War API Error: %d", status))
		}
		return h.serverError(c, clanTag, err)
	}

	if war.WarState(current.State) == war.NotInWar {
		return respondError(c, fiber.StatusNotFound, CodeNotInWar, "This clan is not currently in a war.", war.PreviewClan(*clan))
	}

	report, err := war.TransformWar(*current, h.now())
	if err != nil {
		return h.serverError(c, clanTag, err)
	}

	log.Debug().
		Str("clan_tag", clanTag).
		Str("state", report.State).
		Str("war_type", report.WarType).
		Msg("Served war report")

	return respondOK(c, report)
}

// Clan returns basic clan information
func (h *Handler) Clan(c *fiber.Ctx) error {
	rawTag := c.Params("clanTag")
	if rawTag == "" {
		return respondError(c, fiber.StatusBadRequest, CodeInvalidTag, "Clan tag is required.", nil)
	}
	clanTag := tag.Format(rawTag)

	clan, err := h.api.GetClan(c.UserContext(), clanTag)
	if err != nil {
		if status, ok := coc.StatusCode(err); ok {
			if status == http.StatusNotFound {
				return respondError(c, status, CodeClanNotFound, "Clan not found", nil)
			}
			return h.apiError(c, clanTag, status, fmt.Sprintf("API Error: %d", status))
		}
		return h.serverError(c, clanTag, err)
	}

	return respondOK(c, war.ClanInfoFrom(*clan))
}

func (h *Handler) apiError(c *fiber.Ctx, clanTag string, status int, message string) error {
	log.Warn().
		Str("clan_tag", clanTag).
		Int("upstream_status", status).
		Str("request_id", requestID(c)).
		Msg("Clash API returned an error status")
	return respondError(c, status, CodeAPIError, message, nil)
}

func (h *Handler) serverError(c *fiber.Ctx, clanTag string, err error) error {
	log.Error().
		Err(err).
		Str("clan_tag", clanTag).
		Str("request_id", requestID(c)).
		Msg("Failed to serve request")
	monitoring.CaptureError(err, map[string]string{
		"route":      c.Route().Path,
		"clan_tag":   clanTag,
		"request_id": requestID(c),
	})
	return respondError(c, fiber.StatusInternalServerError, CodeServerError, "Server error: "+err.Error(), nil)
}
