package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://localhost:8080", cfg.RealmBaseURL)
				assert.Equal(t, "v1", cfg.KeyServiceAPIVersion)
				assert.Equal(t, 1, cfg.KeyServiceRetryCount)
				assert.Equal(t, "aes-gcm", cfg.EncryptionMethod)
				assert.Equal(t, "lockbox", cfg.KeyringServiceName)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, 10, cfg.LockoutMaxAttempts)
				assert.Equal(t, 30*time.Minute, cfg.LockoutDuration)
			},
		},
		{
			name: "load custom key service configuration",
			envVars: map[string]string{
				"REALM_BASE_URL":         "https://keyservice.example.com",
				"KEYSERVICE_API_VERSION": "v2",
				"KEYSERVICE_RETRY_COUNT": "3",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://keyservice.example.com", cfg.RealmBaseURL)
				assert.Equal(t, "v2", cfg.KeyServiceAPIVersion)
				assert.Equal(t, 3, cfg.KeyServiceRetryCount)
			},
		},
		{
			name: "load custom encryption method",
			envVars: map[string]string{
				"ENCRYPTION_METHOD": "aes-cbc-pkcs7",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "aes-cbc-pkcs7", cfg.EncryptionMethod)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing realm base URL",
			mutate:  func(cfg *Config) { cfg.RealmBaseURL = "" },
			wantErr: true,
		},
		{
			name:    "negative retry count",
			mutate:  func(cfg *Config) { cfg.KeyServiceRetryCount = -1 },
			wantErr: true,
		},
		{
			name:    "unknown encryption method",
			mutate:  func(cfg *Config) { cfg.EncryptionMethod = "rot13" },
			wantErr: true,
		},
		{
			name:    "invalid server port",
			mutate:  func(cfg *Config) { cfg.ServerPort = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		want     string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.want, cfg.GetGinMode())
		})
	}
}
