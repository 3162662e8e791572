// Package stormglass fetches point marine weather from the Stormglass API
// and normalizes it into condition readings.
package stormglass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

const (
	defaultBaseURL = "https://api.stormglass.io/v2"
	requestParams  = "waveHeight,wavePeriod,waveDirection,windSpeed,windDirection,airTemperature,waterTemperature"

	// Upstream gaps fall back to mid-range values rather than zeros so a
	// partial response still scores sensibly.
	defaultWaveHeight = 3.0
	defaultWavePeriod = 10.0
	defaultWindSpeed  = 10.0
	defaultAirTemp    = 20.0
	defaultTideHeight = 0.5
)

// Client calls the Stormglass weather point endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds an API client. The key is mandatory; callers without one
// should use the simulated source instead.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("stormglass api key cannot be empty")
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}, nil
}

// Fetch retrieves the current reading for a spot.
func (c *Client) Fetch(ctx context.Context, spot surfreport.Spot) (conditions.Reading, error) {
	day := c.now().UTC().Format("2006-01-02")
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%.4f", spot.Latitude))
	query.Set("lng", fmt.Sprintf("%.4f", spot.Longitude))
	query.Set("params", requestParams)
	query.Set("start", day)
	query.Set("end", day)
	endpoint := c.baseURL + "/weather/point?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return conditions.Reading{}, fmt.Errorf("build stormglass request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return conditions.Reading{}, fmt.Errorf("stormglass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return conditions.Reading{}, fmt.Errorf("stormglass request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return conditions.Reading{}, fmt.Errorf("read stormglass response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return conditions.Reading{}, fmt.Errorf("decode stormglass response: %w", err)
	}
	if len(raw.Hours) == 0 {
		return conditions.Reading{}, errors.New("stormglass returned no hourly records")
	}

	return normalizeHour(raw.Hours[0]), nil
}

type apiResponse struct {
	Hours []hourRecord `json:"hours"`
}

type hourRecord struct {
	Time           string       `json:"time"`
	WaveHeight     sourceValues `json:"waveHeight"`
	WavePeriod     sourceValues `json:"wavePeriod"`
	WaveDirection  sourceValues `json:"waveDirection"`
	WindSpeed      sourceValues `json:"windSpeed"`
	WindDirection  sourceValues `json:"windDirection"`
	AirTemperature sourceValues `json:"airTemperature"`
}

// sourceValues maps forecast providers to their value for one parameter.
type sourceValues map[string]float64

func (v sourceValues) pick(fallback float64) float64 {
	if val, ok := v["noaa"]; ok {
		return val
	}
	if val, ok := v["sg"]; ok {
		return val
	}
	for _, val := range v {
		return val
	}
	return fallback
}

// normalizeHour maps one hourly record onto a reading. Swell mirrors the
// wave parameters and tide height is a fixed placeholder, matching the
// upstream parameter set requested.
func normalizeHour(hour hourRecord) conditions.Reading {
	waveHeight := hour.WaveHeight.pick(defaultWaveHeight)
	wavePeriod := hour.WavePeriod.pick(defaultWavePeriod)
	waveDir := compassPoint(hour.WaveDirection.pick(225)) // SW when absent

	return conditions.Reading{
		WaveHeight:     waveHeight,
		WavePeriod:     wavePeriod,
		WaveDirection:  waveDir,
		WindSpeed:      hour.WindSpeed.pick(defaultWindSpeed),
		WindDirection:  compassPoint(hour.WindDirection.pick(315)), // NW when absent
		Temperature:    hour.AirTemperature.pick(defaultAirTemp),
		TideHeight:     defaultTideHeight,
		SwellHeight:    waveHeight,
		SwellPeriod:    wavePeriod,
		SwellDirection: waveDir,
	}
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// compassPoint renders a bearing in degrees as a 16-point compass label.
func compassPoint(degrees float64) string {
	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}
	idx := int(math.Round(normalized/22.5)) % len(compassPoints)
	return compassPoints[idx]
}
