// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// RealmBaseURL is the base URL of the key service realm
	// (e.g., "https://keyservice.example.com").
	RealmBaseURL string
	// KeyServiceAPIVersion is the key service API version path segment.
	KeyServiceAPIVersion string
	// KeyServiceRetryCount is the number of extra attempts after a transport
	// failure when calling the key service.
	KeyServiceRetryCount int

	// EncryptionMethod selects the envelope format for stored payloads
	// ("aes-gcm" or "aes-cbc-pkcs7").
	EncryptionMethod string

	// KeyringServiceName is the service name used to namespace items in the
	// platform keyring.
	KeyringServiceName string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// ServerHost is the host address the stub key service will bind to.
	ServerHost string
	// ServerPort is the port number the stub key service will listen on.
	ServerPort int

	// RateLimitEnabled indicates whether rate limiting for the stub key
	// service is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second and client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled on the stub key service.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// LockoutMaxAttempts is the number of failed secret attempts before the
	// stub key service locks a key.
	LockoutMaxAttempts int
	// LockoutDuration is how long a locked key stays locked.
	LockoutDuration time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Key service client
		RealmBaseURL:         env.GetString("REALM_BASE_URL", "http://localhost:8080"),
		KeyServiceAPIVersion: env.GetString("KEYSERVICE_API_VERSION", "v1"),
		KeyServiceRetryCount: env.GetInt("KEYSERVICE_RETRY_COUNT", 1),

		// Encryption
		EncryptionMethod: env.GetString("ENCRYPTION_METHOD", "aes-gcm"),

		// Local secure storage
		KeyringServiceName: env.GetString("KEYRING_SERVICE_NAME", "lockbox"),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Stub key service
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Rate Limiting (stub key service, IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "lockbox"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Key lockout
		LockoutMaxAttempts: env.GetInt("LOCKOUT_MAX_ATTEMPTS", 10),
		LockoutDuration:    env.GetDuration("LOCKOUT_DURATION_MINUTES", 30, time.Minute),
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RealmBaseURL, validation.Required),
		validation.Field(&c.KeyServiceAPIVersion, validation.Required),
		validation.Field(&c.KeyServiceRetryCount, validation.Min(0)),
		validation.Field(&c.EncryptionMethod, validation.Required, validation.In("aes-gcm", "aes-cbc-pkcs7")),
		validation.Field(&c.KeyringServiceName, validation.Required),
		validation.Field(&c.ServerPort, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LockoutMaxAttempts, validation.Min(1)),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
