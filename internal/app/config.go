package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// PlaceholderAPIToken is used when COC_API_TOKEN is not set
	PlaceholderAPIToken = "YOUR_API_TOKEN_HERE"
	DefaultAPIBase      = "https://cocproxy.royaleapi.dev/v1"
	DefaultPort         = 5000
)

// Config holds application configuration
type Config struct {
	CocAPIToken string
	CocAPIBase  string
	Port        int
	Environment string
	SentryDSN   string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables.
// A missing API token is not fatal: the placeholder is used and a warning logged.
func LoadConfig() (*Config, error) {
	token := os.Getenv("COC_API_TOKEN")
	if token == "" {
		token = PlaceholderAPIToken
	}
	if token == PlaceholderAPIToken {
		log.Warn().
			Str("docs", "https://developer.clashofclans.com/").
			Msg("COC_API_TOKEN is not set; upstream requests will be rejected")
	}

	base := strings.TrimRight(getEnv("COC_API_BASE", DefaultAPIBase), "/")

	port := DefaultPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("PORT must be a valid port number, got %q", portStr)
		}
		port = p
	}

	return &Config{
		CocAPIToken: token,
		CocAPIBase:  base,
		Port:        port,
		Environment: getEnv("ENV", "development"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
