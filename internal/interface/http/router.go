package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jacob-Northcote/WaveView/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// The error handler runs outside any middleware that can abort, so
	// rejected requests still get the JSON error envelope.
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger.With("component", "http.access")),
		errorHandlingMiddleware(logger.With("component", "http.errors")),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger.With("component", "http.ratelimit")),
	)

	api := router.Group("/api/v1")
	{
		api.GET("/spots", handler.Spots)
		api.GET("/spots/:id/conditions", handler.Conditions)
		api.GET("/spots/:id/report", handler.Report)
		api.GET("/rankings", handler.Rankings)
		api.GET("/health", handler.Health)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger.With("component", "http.retry")),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
