// Package simulated produces realistic mock surf readings for development
// and for graceful degradation when the live marine API is unavailable.
package simulated

import (
	"context"
	"math"
	"math/rand"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Source generates random but plausible readings.
type Source struct {
	randFloat func() float64
}

// NewSource constructs a simulated conditions source.
func NewSource() *Source {
	return &Source{randFloat: rand.Float64}
}

// Fetch returns a fresh random reading. Swell mirrors the wave values the
// way the live source reports them.
func (s *Source) Fetch(_ context.Context, _ surfreport.Spot) (conditions.Reading, error) {
	waveHeight := roundTo(s.inRange(2.0, 12.0), 1)
	wavePeriod := roundTo(s.inRange(8.0, 18.0), 1)
	waveDir := s.direction()

	return conditions.Reading{
		WaveHeight:     waveHeight,
		WavePeriod:     wavePeriod,
		WaveDirection:  waveDir,
		WindSpeed:      roundTo(s.inRange(5.0, 25.0), 1),
		WindDirection:  s.direction(),
		Temperature:    roundTo(s.inRange(15.0, 30.0), 1),
		TideHeight:     roundTo(s.inRange(-0.5, 2.5), 2),
		SwellHeight:    waveHeight,
		SwellPeriod:    wavePeriod,
		SwellDirection: waveDir,
	}, nil
}

func (s *Source) inRange(lo, hi float64) float64 {
	return lo + s.randFloat()*(hi-lo)
}

func (s *Source) direction() string {
	idx := int(s.randFloat() * float64(len(compassPoints)))
	if idx >= len(compassPoints) {
		idx = len(compassPoints) - 1
	}
	return compassPoints[idx]
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
