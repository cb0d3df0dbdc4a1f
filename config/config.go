package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, the upstream market-data provider and request rate limiting.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REQUEST_TIMEOUT=10s
//	IEX_TOKEN=pk_live_xxx
//	IEX_BASE_URL=https://cloud.iexapis.com/stable
//	IEX_TIMEOUT=15s
//	RATE_LIMIT_PER_MINUTE=60
//	RATE_LIMIT_REDIS_ADDR=localhost:6379
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	MarketData MarketDataConfig // Upstream market-data provider
	RateLimit  RateLimitConfig  // Per-client request limiting
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Deadline applied to every request context
}

// MarketDataConfig defines how the upstream provider is reached.
//
// Fields:
//   - BaseURL: provider API root, without trailing slash.
//   - Token: access token appended to every upstream call.
//   - Timeout: HTTP client timeout for a single upstream call.
type MarketDataConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// RateLimitConfig configures the per-IP limiter. An empty RedisAddr keeps
// counters in process memory.
type RateLimitConfig struct {
	PerMinute     int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by cmd and app wiring.
// Collaborators receive the values they need at construction time instead
// of reading AppConfig themselves.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("IEX_BASE_URL", "https://cloud.iexapis.com/stable")
	viper.SetDefault("IEX_TOKEN", "")
	viper.SetDefault("IEX_TIMEOUT", "15s")

	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("RATE_LIMIT_REDIS_ADDR", "")
	viper.SetDefault("RATE_LIMIT_REDIS_PASSWORD", "")
	viper.SetDefault("RATE_LIMIT_REDIS_DB", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		MarketData: MarketDataConfig{
			BaseURL: strings.TrimRight(viper.GetString("IEX_BASE_URL"), "/"),
			Token:   viper.GetString("IEX_TOKEN"),
			Timeout: viper.GetDuration("IEX_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			PerMinute:     viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RedisAddr:     viper.GetString("RATE_LIMIT_REDIS_ADDR"),
			RedisPassword: viper.GetString("RATE_LIMIT_REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("RATE_LIMIT_REDIS_DB"),
		},
	}

	validateConfig()
}

// missingKeys lists the required variables absent from AppConfig.
func missingKeys() []string {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if AppConfig.MarketData.BaseURL == "" {
		missing = append(missing, "IEX_BASE_URL")
	}
	if AppConfig.MarketData.Token == "" {
		missing = append(missing, "IEX_TOKEN")
	}
	if AppConfig.MarketData.Timeout <= 0 {
		missing = append(missing, "IEX_TIMEOUT")
	}
	if AppConfig.RateLimit.PerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}

	return missing
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(); len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
