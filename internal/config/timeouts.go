package config

import "time"

// HTTP timeout constants
const (
	// Inbound server configuration
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 10 * time.Second
	ServerIdleTimeout     = 30 * time.Second
	ServerShutdownTimeout = 5 * time.Second

	// Outbound Clash API configuration
	UpstreamRequestTimeout  = 30 * time.Second
	UpstreamMaxIdleConns    = 100
	UpstreamIdleConnTimeout = 90 * time.Second
)

// ServerConfig defines timeouts for the inbound HTTP server
type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// UpstreamConfig defines the outbound HTTP client behavior
type UpstreamConfig struct {
	Timeout         time.Duration
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// HTTPConfig contains all HTTP timeout configurations
type HTTPConfig struct {
	Server   ServerConfig
	Upstream UpstreamConfig
}

// DefaultHTTPConfig provides sensible defaults
var DefaultHTTPConfig = HTTPConfig{
	Server: ServerConfig{
		ReadTimeout:     ServerReadTimeout,
		WriteTimeout:    ServerWriteTimeout,
		IdleTimeout:     ServerIdleTimeout,
		ShutdownTimeout: ServerShutdownTimeout,
	},
	Upstream: UpstreamConfig{
		Timeout:         UpstreamRequestTimeout,
		MaxIdleConns:    UpstreamMaxIdleConns,
		IdleConnTimeout: UpstreamIdleConnTimeout,
	},
}

// Valid reports whether every timeout is positive
func (c HTTPConfig) Valid() bool {
	return c.Server.ReadTimeout > 0 &&
		c.Server.WriteTimeout > 0 &&
		c.Server.IdleTimeout > 0 &&
		c.Server.ShutdownTimeout > 0 &&
		c.Upstream.Timeout > 0 &&
		c.Upstream.MaxIdleConns > 0
}
