package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clashberry_api/internal/app"
	"clashberry_api/internal/coc"
	"clashberry_api/internal/config"
	"clashberry_api/internal/monitoring"
	"clashberry_api/internal/server"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	port := flag.Int("port", 0, "Port to listen on (overrides PORT)")
	flag.Parse()

	// Load configuration
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *port > 0 {
		cfg.Port = *port
	}

	if monitoring.InitSentry(cfg.SentryDSN, cfg.Environment, server.ServiceVersion) {
		log.Info().Msg("Sentry error reporting enabled")
	}

	// Initialize clients
	httpCfg := config.DefaultHTTPConfig
	if !httpCfg.Valid() {
		log.Fatal().Interface("http_config", httpCfg).Msg("Invalid HTTP timeout configuration")
	}
	cocClient := coc.NewClient(cfg, httpCfg.Upstream)

	fiberApp := server.New(cocClient, server.Options{HTTP: httpCfg.Server})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := fiberApp.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	log.Info().
		Int("port", cfg.Port).
		Str("env", cfg.Environment).
		Str("upstream", cfg.CocAPIBase).
		Strs("endpoints", []string{"GET /", "GET /health", "GET /api/war/{clanTag}", "GET /api/clan/{clanTag}", "GET /metrics"}).
		Msg("ClashBerry API running")

	<-quit
	log.Info().Msg("Shutting down")

	if err := fiberApp.ShutdownWithTimeout(httpCfg.Server.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	monitoring.FlushSentry(2 * time.Second)

	log.Info().Msg("Server stopped")
}
