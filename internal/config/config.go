package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	ExchangeAPIBaseURL string
	GoldAPIURLs        []string
	HTTPTimeout        time.Duration

	RatesCacheTTL  time.Duration
	MarketCacheTTL time.Duration
	NewsCacheTTL   time.Duration

	// WarmInterval controls the background market-data refresh job.
	// Zero disables it.
	WarmInterval time.Duration

	SessionExpiration time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		ExchangeAPIBaseURL: getEnv("EXCHANGE_API_BASE_URL", "https://api.exchangerate-api.com/v4/latest"),
		GoldAPIURLs: getEnvAsList("GOLD_API_URLS",
			"https://api.metals.live/v1/spot/gold,https://api.goldapi.io/api/XAU/USD"),
		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),

		RatesCacheTTL:  getEnvAsDuration("RATES_CACHE_TTL", time.Hour),
		MarketCacheTTL: getEnvAsDuration("MARKET_CACHE_TTL", 15*time.Minute),
		NewsCacheTTL:   getEnvAsDuration("NEWS_CACHE_TTL", 2*time.Hour),

		WarmInterval: getEnvAsDuration("WARM_INTERVAL", 15*time.Minute),

		SessionExpiration: getEnvAsDuration("SESSION_EXPIRATION", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
