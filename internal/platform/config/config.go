package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// TargetCurrency is the single currency all monetary fields are
	// normalized into.
	TargetCurrency string

	// RateAPIBaseURL is the quote service endpoint; the source currency code
	// is appended as the final path segment.
	RateAPIBaseURL string

	// RateFetchTimeout bounds each quote lookup so a hung service cannot
	// stall a request.
	RateFetchTimeout time.Duration

	// RateCacheTTL is the validity window for a fetched rate.
	RateCacheTTL time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("TARGET_CURRENCY", "INR")
	viper.SetDefault("RATE_API_BASE_URL", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "1h")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.TargetCurrency = viper.GetString("TARGET_CURRENCY")
	if len(cfg.TargetCurrency) != 3 {
		log.Printf("Warning: Invalid TARGET_CURRENCY ('%s'). Defaulting to INR.\n", cfg.TargetCurrency)
		cfg.TargetCurrency = "INR"
	}

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_BASE_URL")

	fetchTimeoutStr := viper.GetString("RATE_FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil {
		fetchTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATE_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", fetchTimeoutStr, fetchTimeout.String())
	}
	cfg.RateFetchTimeout = fetchTimeout

	cacheTTLStr := viper.GetString("RATE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.RateCacheTTL = cacheTTL

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
