package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	keyserviceHTTP "github.com/allisson/lockbox/internal/keyservice/http"
	"github.com/allisson/lockbox/internal/metrics"
)

// RouterConfig carries the knobs for assembling the stub key service router.
type RouterConfig struct {
	GinMode                 string
	APIVersion              string
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
	CORSEnabled             bool
	CORSAllowOrigins        string

	// MeterProvider enables per-request metrics when non-nil.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string
}

// Server hosts the stub key service over HTTP.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the stub key service server with all middleware and
// routes wired.
func NewServer(
	keyHandler *keyserviceHTTP.KeyHandler,
	host string,
	port int,
	cfg RouterConfig,
	logger *slog.Logger,
) *Server {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	server := &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router: router,
		logger: logger,
	}

	router.GET("/health", server.healthHandler)

	version := cfg.APIVersion
	if version == "" {
		version = "v1"
	}
	api := router.Group("/keyservice/" + version)
	api.POST("/createkey", keyHandler.CreateKeyHandler)
	api.POST("/key", keyHandler.GetKeyHandler)

	return server
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler answers the health check endpoint.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting stub key service", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down stub key service")
	return s.server.Shutdown(ctx)
}
