package coc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"clashberry_api/internal/app"
	"clashberry_api/internal/config"
	"clashberry_api/internal/domain/tag"
	"clashberry_api/internal/monitoring"

	"github.com/rs/zerolog/log"
)

const (
	endpointClan       = "clan"
	endpointCurrentWar = "currentwar"
)

// StatusError is returned when the Clash API answers with a non-200 status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// StatusCode extracts the upstream status from err, if it carries one
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}

// Client talks to the Clash API. The underlying http.Client pools
// connections and is safe for concurrent use by many requests.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewClient creates a client from explicit configuration
func NewClient(cfg *app.Config, httpCfg config.UpstreamConfig) *Client {
	return &Client{
		token:   cfg.CocAPIToken,
		baseURL: cfg.CocAPIBase,
		client: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        httpCfg.MaxIdleConns,
				MaxIdleConnsPerHost: httpCfg.MaxIdleConns,
				IdleConnTimeout:     httpCfg.IdleConnTimeout,
			},
		},
	}
}

// makeAPIRequest creates and executes an authenticated GET request to the Clash API
func (c *Client) makeAPIRequest(ctx context.Context, endpoint, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	monitoring.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		monitoring.UpstreamRequestCount.WithLabelValues(endpoint, "error").Inc()
		log.Debug().
			Err(err).
			Str("url", url).
			Msg("API request failed")
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	monitoring.UpstreamRequestCount.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// handleAPIResponse processes the HTTP response and returns the body bytes
func (c *Client) handleAPIResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	resp, err := c.makeAPIRequest(ctx, endpoint, url)
	if err != nil {
		return err
	}

	body, err := c.handleAPIResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// GetClan fetches a clan by tag
func (c *Client) GetClan(ctx context.Context, clanTag string) (*app.Clan, error) {
	url := fmt.Sprintf("%s/clans/%s", c.baseURL, tag.PathEscape(clanTag))

	log.Debug().Str("url", url).Msg("Fetching clan")

	var clan app.Clan
	if err := c.get(ctx, endpointClan, url, &clan); err != nil {
		return nil, err
	}

	log.Debug().
		Str("clan_tag", clan.Tag).
		Bool("war_log_public", clan.IsWarLogPublic).
		Msg("Successfully fetched clan")

	return &clan, nil
}

// GetCurrentWar fetches the current war of a clan
func (c *Client) GetCurrentWar(ctx context.Context, clanTag string) (*app.CurrentWar, error) {
	url := fmt.Sprintf("%s/clans/%s/currentwar", c.baseURL, tag.PathEscape(clanTag))

	log.Debug().Str("url", url).Msg("Fetching current war")

	var war app.CurrentWar
	if err := c.get(ctx, endpointCurrentWar, url, &war); err != nil {
		return nil, err
	}

	log.Debug().
		Str("state", war.State).
		Interface("team_size", war.TeamSize).
		Msg("Successfully fetched current war")

	return &war, nil
}
