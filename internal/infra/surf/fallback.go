// Package surf composes condition sources.
package surf

import (
	"context"
	"log/slog"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

// FallbackSource tries the primary source and degrades to the backup when
// it fails, so a marine API outage never takes the whole service down.
type FallbackSource struct {
	primary surfreport.ConditionsSource
	backup  surfreport.ConditionsSource
	logger  *slog.Logger
}

// NewFallbackSource wires a primary/backup pair.
func NewFallbackSource(primary, backup surfreport.ConditionsSource, logger *slog.Logger) *FallbackSource {
	return &FallbackSource{
		primary: primary,
		backup:  backup,
		logger:  logger.With("component", "surf.fallback"),
	}
}

// Fetch implements surfreport.ConditionsSource.
func (f *FallbackSource) Fetch(ctx context.Context, spot surfreport.Spot) (conditions.Reading, error) {
	reading, err := f.primary.Fetch(ctx, spot)
	if err == nil {
		return reading, nil
	}
	f.logger.Warn("primary surf source failed, using simulated data", "spot", spot.ID, "error", err)
	return f.backup.Fetch(ctx, spot)
}
