package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
	apperrors "github.com/Jacob-Northcote/WaveView/pkg/errors"
)

const serviceVersion = "1.0.0"

// Handler wires the HTTP transport to the surf report domain.
type Handler struct {
	reportSvc surfreport.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(reportSvc surfreport.Service, logger *slog.Logger) *Handler {
	return &Handler{
		reportSvc: reportSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// Spots lists the known surf spots.
func (h *Handler) Spots(c *gin.Context) {
	spots, err := h.reportSvc.Spots(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "spots_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// Conditions returns the current reading and quality score for one spot.
func (h *Handler) Conditions(c *gin.Context) {
	resp, err := h.reportSvc.Conditions(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err, "conditions_failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report returns the full AI-assisted analysis for one spot.
func (h *Handler) Report(c *gin.Context) {
	report, err := h.reportSvc.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err, "report_failed")
		return
	}
	c.JSON(http.StatusOK, report)
}

// Rankings returns all spots ordered by current surf quality.
func (h *Handler) Rankings(c *gin.Context) {
	ranked, err := h.reportSvc.Rankings(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "rankings_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rankings":  ranked,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   serviceVersion,
	})
}

func abortWithServiceError(c *gin.Context, err error, fallbackCode string) {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "unknown_spot"):
		status = http.StatusNotFound
		code = "unknown_spot"
	case apperrors.IsCode(err, "surf_data_error"):
		status = http.StatusBadGateway
	case apperrors.IsCode(err, "llm_error"):
		status = http.StatusBadGateway
	}
	abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
