package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"certificates/internal/adapter/repo"
	"certificates/internal/domain"
	"certificates/internal/http/handlers"
	"certificates/internal/http/httpapi"
	"certificates/internal/infra"
	"certificates/internal/infra/geoip"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg)

	ctx := context.Background()

	var certs domain.CertificateRepository
	switch cfg.StorageDriver {
	case infra.StoragePostgres:
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()

		runner := infra.NewSQLRunner(dbpool, logger)
		if err := infra.EnsureSchema(ctx, runner); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare schema")
		}
		certs = repo.NewCertificateRepository(runner)
	default:
		certs = repo.NewMemoryRepository()
	}
	logger.Info().Str("storage", cfg.StorageDriver).Msg("certificate repository ready")

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	app := handlers.NewApp(certs, logger)
	router := httpapi.NewRouter(app, httpapi.Options{
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   resolver.Lookup(),
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router, logger)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
