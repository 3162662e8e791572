package surfreport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/internal/domain/waveart"
	"github.com/Jacob-Northcote/WaveView/internal/infra/llm/chatgpt"
	apperrors "github.com/Jacob-Northcote/WaveView/pkg/errors"
	"github.com/Jacob-Northcote/WaveView/pkg/metrics"
)

// Service exposes the surf report capabilities.
type Service interface {
	Spots(ctx context.Context) ([]Spot, error)
	Conditions(ctx context.Context, spotID string) (ConditionsResponse, error)
	Report(ctx context.Context, spotID string) (Report, error)
	Rankings(ctx context.Context) ([]RankedSpot, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// SpotRepository provides the surf spot catalog.
type SpotRepository interface {
	ListSpots(ctx context.Context) ([]Spot, error)
	GetSpot(ctx context.Context, id string) (Spot, bool, error)
}

// ConditionsSource fetches the current reading for a spot.
type ConditionsSource interface {
	Fetch(ctx context.Context, spot Spot) (conditions.Reading, error)
}

// ReportCache stores generated reports keyed by spot ID.
type ReportCache interface {
	GetReport(ctx context.Context, spotID string) (Report, bool, error)
	SaveReport(ctx context.Context, report Report, ttl time.Duration) error
}

type service struct {
	cfg    Config
	spots  SpotRepository
	source ConditionsSource
	client ChatClient
	cache  ReportCache
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the surf report domain.
func NewService(cfg Config, spots SpotRepository, source ConditionsSource, client ChatClient, cache ReportCache, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		spots:  spots,
		source: source,
		client: client,
		cache:  cache,
		logger: logger.With("component", "surfreport.service"),
		now:    time.Now,
	}
}

// Spots lists the known surf spots.
func (s *service) Spots(ctx context.Context) ([]Spot, error) {
	spots, err := s.spots.ListSpots(ctx)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list surf spots", err)
	}
	return spots, nil
}

// Conditions returns the current reading and quality score for one spot.
func (s *service) Conditions(ctx context.Context, spotID string) (ConditionsResponse, error) {
	spot, err := s.resolveSpot(ctx, spotID)
	if err != nil {
		return ConditionsResponse{}, err
	}

	reading, err := s.source.Fetch(ctx, spot)
	if err != nil {
		return ConditionsResponse{}, apperrors.Wrap("surf_data_error", "failed to fetch surf conditions", err)
	}

	return ConditionsResponse{
		Spot:      spot,
		Reading:   reading,
		Score:     conditions.Score(reading),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// Report produces the full analysis for one spot: conditions, quality score,
// analyst prose and wave art. Reports are cached per spot for the configured
// TTL; cache failures degrade to a fresh fetch.
func (s *service) Report(ctx context.Context, spotID string) (Report, error) {
	spot, err := s.resolveSpot(ctx, spotID)
	if err != nil {
		return Report{}, err
	}

	if cached, ok, cacheErr := s.cache.GetReport(ctx, spot.ID); cacheErr != nil {
		s.logger.Warn("report cache lookup failed", "spot", spot.ID, "error", cacheErr)
	} else if ok {
		s.logger.Info("report served from cache", "spot", spot.ID)
		return cached, nil
	}

	reading, err := s.source.Fetch(ctx, spot)
	if err != nil {
		return Report{}, apperrors.Wrap("surf_data_error", "failed to fetch surf conditions", err)
	}

	messages := []chatgpt.Message{
		{Role: "system", Content: s.buildSystemPrompt()},
		{Role: "user", Content: buildAnalysisPrompt(spot, reading)},
	}
	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return Report{}, apperrors.Wrap("llm_error", "chatgpt request failed", err)
	}
	if len(completion.Choices) == 0 {
		return Report{}, apperrors.Wrap("llm_error", "chatgpt returned no choices", nil)
	}
	analysis := completion.Choices[0].Message.Content
	s.logger.Info("surf analysis generated", "spot", spot.ID, "tokens", completion.Usage.TotalTokens)

	report := Report{
		Spot:        spot,
		Reading:     reading,
		Score:       conditions.Score(reading),
		Analysis:    analysis,
		WaveArt:     waveart.Render(analysis, reading.WaveHeight),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}
	usage := metrics.TokenUsage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}
	if !usage.IsZero() {
		report.Usage = &usage
	}

	if err := s.cache.SaveReport(ctx, report, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("report cache save failed", "spot", spot.ID, "error", err)
	}

	return report, nil
}

// Rankings scores every spot's current conditions and orders them best
// first. A spot whose fetch fails is skipped so one flaky upstream does not
// empty the whole board.
func (s *service) Rankings(ctx context.Context) ([]RankedSpot, error) {
	spots, err := s.spots.ListSpots(ctx)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list surf spots", err)
	}

	entries := make([]conditions.Entry, 0, len(spots))
	for _, spot := range spots {
		reading, err := s.source.Fetch(ctx, spot)
		if err != nil {
			s.logger.Warn("skipping spot in rankings", "spot", spot.ID, "error", err)
			continue
		}
		entries = append(entries, conditions.Entry{ID: spot.ID, Name: spot.Name, Reading: reading})
	}

	ranked := conditions.Rank(entries)
	out := make([]RankedSpot, 0, len(ranked))
	for _, entry := range ranked {
		out = append(out, RankedSpot{
			SpotID:     entry.ID,
			Name:       entry.Name,
			WaveHeight: entry.Reading.WaveHeight,
			Score:      entry.Score,
			Reading:    entry.Reading,
		})
	}
	return out, nil
}

func (s *service) resolveSpot(ctx context.Context, spotID string) (Spot, error) {
	id := strings.ToLower(strings.TrimSpace(spotID))
	if id == "" {
		return Spot{}, apperrors.Wrap("invalid_input", "spot id cannot be empty", nil)
	}
	spot, ok, err := s.spots.GetSpot(ctx, id)
	if err != nil {
		return Spot{}, apperrors.Wrap("storage_error", "failed to load surf spot", err)
	}
	if !ok {
		return Spot{}, apperrors.Wrap("unknown_spot", fmt.Sprintf("spot %q not found", id), nil)
	}
	return spot, nil
}

func (s *service) buildSystemPrompt() string {
	base := strings.TrimSpace(s.cfg.Prompt)
	if base == "" {
		base = "You are a professional surf analyst and ASCII artist."
	}
	enforcer := " Provide detailed, accurate surf analysis and create proportional ASCII wave visualizations. Respond with a **WAVE VISUALIZATION:** section containing only the ASCII wave followed by a blank line, then a **SURF ANALYSIS:** section covering wave quality, difficulty level, conditions, key insights, safety and best time to surf."
	return base + enforcer
}

func buildAnalysisPrompt(spot Spot, r conditions.Reading) string {
	return fmt.Sprintf(
		"Analyze these surf conditions:\nLocation: %s\nWave Height: %.1f feet\nWave Period: %.1f seconds\nWave Direction: %s\nWind Speed: %.1f mph\nWind Direction: %s\nTemperature: %.1f C\nSwell Height: %.1f feet\nSwell Period: %.1f seconds\nSwell Direction: %s\nTide: %.1f feet",
		spot.Name,
		r.WaveHeight,
		r.WavePeriod,
		r.WaveDirection,
		r.WindSpeed,
		r.WindDirection,
		r.Temperature,
		r.SwellHeight,
		r.SwellPeriod,
		r.SwellDirection,
		r.TideHeight,
	)
}
