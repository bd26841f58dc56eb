package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/invoice_normalizer_app/internal/adapters/ratecache"
	"github.com/SscSPs/invoice_normalizer_app/internal/adapters/ratesource"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/handlers"
	"github.com/SscSPs/invoice_normalizer_app/internal/middleware"
	"github.com/SscSPs/invoice_normalizer_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Invoice Normalizer API
// @version 1.0
// @description Normalizes extracted invoice field maps into a single target currency and verifies tax identifiers.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire the conversion path: live quote source behind a TTL cache.
	rateCache := ratecache.NewMemory(cfg.RateCacheTTL)
	rateSource := ratesource.NewExchangeRateAPI(cfg.RateAPIBaseURL, cfg.RateFetchTimeout, logger)
	serviceContainer := services.NewServiceContainer(cfg, rateSource, rateCache, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("target_currency", cfg.TargetCurrency))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
