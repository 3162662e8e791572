package surfreport

import (
	"time"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/pkg/metrics"
)

// Spot identifies one surf break in the catalog.
type Spot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
}

// ConditionsResponse carries the current reading for one spot plus its
// computed quality.
type ConditionsResponse struct {
	Spot      Spot               `json:"spot"`
	Reading   conditions.Reading `json:"reading"`
	Score     float64            `json:"qualityScore"`
	Timestamp string             `json:"timestamp"`
}

// Report is the full condition analysis served to the frontend.
type Report struct {
	Spot        Spot                `json:"spot"`
	Reading     conditions.Reading  `json:"reading"`
	Score       float64             `json:"qualityScore"`
	Analysis    string              `json:"analysis"`
	WaveArt     []string            `json:"waveArt"`
	Usage       *metrics.TokenUsage `json:"usage,omitempty"`
	GeneratedAt string              `json:"generatedAt"`
}

// RankedSpot is one row of the rankings response, best spot first.
type RankedSpot struct {
	SpotID     string             `json:"spotId"`
	Name       string             `json:"name"`
	WaveHeight float64            `json:"waveHeight"`
	Score      float64            `json:"qualityScore"`
	Reading    conditions.Reading `json:"reading"`
}

// Config wires runtime settings for the report domain.
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Prompt      string
	CacheTTL    time.Duration
}
