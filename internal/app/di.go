// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/99designs/keyring"

	"github.com/allisson/lockbox/internal/config"
	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
	cryptoService "github.com/allisson/lockbox/internal/crypto/service"
	"github.com/allisson/lockbox/internal/http"
	"github.com/allisson/lockbox/internal/keyservice/client"
	keyserviceHTTP "github.com/allisson/lockbox/internal/keyservice/http"
	keyserviceService "github.com/allisson/lockbox/internal/keyservice/service"
	"github.com/allisson/lockbox/internal/metrics"
	"github.com/allisson/lockbox/internal/securestorage"
	storageUsecase "github.com/allisson/lockbox/internal/storage/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	cipherManager    cryptoService.CipherManager
	keyServiceClient client.Client
	secureStorage    securestorage.SecureStorage

	// Use Cases
	encryptedStorage storageUsecase.EncryptedStorage

	// Stub key service
	stubKeyStore *keyserviceService.StubKeyStore
	httpServer   *http.Server

	// Metrics server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	cipherManagerInit    sync.Once
	keyServiceClientInit sync.Once
	secureStorageInit    sync.Once
	encryptedStorageInit sync.Once
	stubKeyStoreInit     sync.Once
	httpServerInit       sync.Once
	metricsServerInit    sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// CipherManager returns the cipher manager instance.
func (c *Container) CipherManager() cryptoService.CipherManager {
	c.cipherManagerInit.Do(func() {
		c.cipherManager = cryptoService.NewCipherManager()
	})
	return c.cipherManager
}

// KeyServiceClient returns the key service HTTP client.
func (c *Container) KeyServiceClient() (client.Client, error) {
	c.keyServiceClientInit.Do(func() {
		keyServiceClient, err := client.New(
			c.config.RealmBaseURL,
			c.config.KeyServiceAPIVersion,
			c.config.KeyServiceRetryCount,
			c.Logger(),
		)
		if err != nil {
			c.initErrors["keyServiceClient"] = err
			return
		}
		c.keyServiceClient = keyServiceClient
	})
	if storedErr, exists := c.initErrors["keyServiceClient"]; exists {
		return nil, storedErr
	}
	return c.keyServiceClient, nil
}

// SecureStorage returns the platform keyring-backed secure storage.
func (c *Container) SecureStorage() (securestorage.SecureStorage, error) {
	c.secureStorageInit.Do(func() {
		storage, err := securestorage.NewKeyringStorage(
			c.config.KeyringServiceName,
			keyring.TerminalPrompt,
		)
		if err != nil {
			c.initErrors["secureStorage"] = err
			return
		}
		c.secureStorage = storage
	})
	if storedErr, exists := c.initErrors["secureStorage"]; exists {
		return nil, storedErr
	}
	return c.secureStorage, nil
}

// EncryptedStorage returns the encrypted storage use case, decorated with
// metrics when enabled.
func (c *Container) EncryptedStorage() (storageUsecase.EncryptedStorage, error) {
	c.encryptedStorageInit.Do(func() {
		keyServiceClient, err := c.KeyServiceClient()
		if err != nil {
			c.initErrors["encryptedStorage"] = err
			return
		}

		secureStorage, err := c.SecureStorage()
		if err != nil {
			c.initErrors["encryptedStorage"] = err
			return
		}

		method, err := cryptoDomain.ParseMethod(c.config.EncryptionMethod)
		if err != nil {
			c.initErrors["encryptedStorage"] = err
			return
		}

		storage := storageUsecase.NewEncryptedStorage(
			keyServiceClient,
			secureStorage,
			c.CipherManager(),
			method,
			nil,
			c.Logger(),
		)

		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["encryptedStorage"] = err
				return
			}
			storage = storageUsecase.NewEncryptedStorageWithMetrics(storage, businessMetrics)
		}

		c.encryptedStorage = storage
	})
	if storedErr, exists := c.initErrors["encryptedStorage"]; exists {
		return nil, storedErr
	}
	return c.encryptedStorage, nil
}

// MetricsProvider returns the OpenTelemetry/Prometheus metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled it returns a no-op implementation.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}

		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}

		businessMetrics, err := metrics.NewBusinessMetrics(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = businessMetrics
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// StubKeyStore returns the in-memory key store backing the stub key service.
func (c *Container) StubKeyStore() *keyserviceService.StubKeyStore {
	c.stubKeyStoreInit.Do(func() {
		c.stubKeyStore = keyserviceService.NewStubKeyStore(
			c.config.LockoutMaxAttempts,
			c.config.LockoutDuration,
			false,
		)
	})
	return c.stubKeyStore
}

// HTTPServer returns the stub key service HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		keyHandler := keyserviceHTTP.NewKeyHandler(c.StubKeyStore(), c.Logger())

		routerConfig := http.RouterConfig{
			GinMode:                 c.config.GetGinMode(),
			APIVersion:              c.config.KeyServiceAPIVersion,
			RateLimitEnabled:        c.config.RateLimitEnabled,
			RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
			RateLimitBurst:          c.config.RateLimitBurst,
			CORSEnabled:             c.config.CORSEnabled,
			CORSAllowOrigins:        c.config.CORSAllowOrigins,
		}

		if c.config.MetricsEnabled {
			provider, err := c.MetricsProvider()
			if err != nil {
				c.initErrors["httpServer"] = err
				return
			}
			routerConfig.MeterProvider = provider.MeterProvider()
			routerConfig.MetricsNamespace = c.config.MetricsNamespace
		}

		c.httpServer = http.NewServer(
			keyHandler,
			c.config.ServerHost,
			c.config.ServerPort,
			routerConfig,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Shutdown metrics provider if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
