package surfreport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/internal/infra/llm/chatgpt"
	apperrors "github.com/Jacob-Northcote/WaveView/pkg/errors"
)

var testSpot = Spot{
	ID:          "pipeline",
	Name:        "Pipeline",
	Latitude:    21.6644,
	Longitude:   -158.0533,
	Description: "World-famous reef break on North Shore",
}

var epicReading = conditions.Reading{
	WaveHeight:     6.0,
	WavePeriod:     12.0,
	WaveDirection:  "NW",
	WindSpeed:      8.0,
	WindDirection:  "NE",
	Temperature:    24.0,
	TideHeight:     0.5,
	SwellHeight:    5.0,
	SwellPeriod:    13.0,
	SwellDirection: "NW",
}

func TestServiceReportSuccess(t *testing.T) {
	analysis := "**WAVE VISUALIZATION:**\n   ~~~\n  ~~~~~\n /~~~~~\\\n\n**SURF ANALYSIS:**\n- Wave Quality: excellent"
	chatStub := &stubChatClient{
		responses: []chatgpt.ChatCompletionResponse{
			{
				Choices: []struct {
					Message chatgpt.Message "json:\"message\""
				}{
					{Message: chatgpt.Message{Role: "assistant", Content: analysis}},
				},
				Usage: chatgpt.Usage{PromptTokens: 120, CompletionTokens: 300, TotalTokens: 420},
			},
		},
	}
	cache := &stubCache{}

	svc := newTestService(t, chatStub, &stubSource{reading: epicReading}, cache)

	report, err := svc.Report(context.Background(), "Pipeline")
	require.NoError(t, err)
	require.Equal(t, testSpot, report.Spot)
	require.Equal(t, epicReading, report.Reading)
	require.Equal(t, 100.0, report.Score)
	require.Equal(t, analysis, report.Analysis)
	require.NotNil(t, report.Usage)
	require.Equal(t, 420, report.Usage.TotalTokens)
	require.Equal(t, "2026-08-30T12:00:00Z", report.GeneratedAt)
	// The analyst headings carry glyphs, so extraction keeps them along
	// with the drawn wave and stops at the blank line before the prose.
	require.Contains(t, report.WaveArt, "   ~~~")
	require.Contains(t, report.WaveArt, " /~~~~~\\")
	require.NotContains(t, report.WaveArt, "- Wave Quality: excellent")
	require.Equal(t, 1, chatStub.calls)
	require.Len(t, cache.saved, 1)
	require.Equal(t, 10*time.Minute, cache.savedTTL)
}

func TestServiceReportServedFromCache(t *testing.T) {
	cached := Report{Spot: testSpot, Analysis: "cached", Score: 80}
	chatStub := &stubChatClient{}
	cache := &stubCache{report: cached, hit: true}

	svc := newTestService(t, chatStub, &stubSource{reading: epicReading}, cache)

	report, err := svc.Report(context.Background(), "pipeline")
	require.NoError(t, err)
	require.Equal(t, cached, report)
	require.Zero(t, chatStub.calls)
}

func TestServiceReportSynthesizesWhenAnalysisHasNoArt(t *testing.T) {
	chatStub := &stubChatClient{
		responses: []chatgpt.ChatCompletionResponse{
			{
				Choices: []struct {
					Message chatgpt.Message "json:\"message\""
				}{
					{Message: chatgpt.Message{Role: "assistant", Content: "clean head high sets all morning"}},
				},
			},
		},
	}

	svc := newTestService(t, chatStub, &stubSource{reading: epicReading}, &stubCache{})

	report, err := svc.Report(context.Background(), "pipeline")
	require.NoError(t, err)
	// round(6/2) = 3 tilde rows plus the underscore base.
	require.Equal(t, []string{"  ~", " ~~~", "~~~~~", "  ___"}, report.WaveArt)
	// No token accounting came back, so none is reported.
	require.Nil(t, report.Usage)
}

func TestServiceReportUnknownSpot(t *testing.T) {
	svc := newTestService(t, &stubChatClient{}, &stubSource{reading: epicReading}, &stubCache{})

	_, err := svc.Report(context.Background(), "mavericks")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "unknown_spot"))
}

func TestServiceReportSurfDataError(t *testing.T) {
	svc := newTestService(t, &stubChatClient{}, &stubSource{err: errors.New("upstream down")}, &stubCache{})

	_, err := svc.Report(context.Background(), "pipeline")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "surf_data_error"))
}

func TestServiceReportLLMError(t *testing.T) {
	svc := newTestService(t, &stubChatClient{err: errors.New("quota exceeded")}, &stubSource{reading: epicReading}, &stubCache{})

	_, err := svc.Report(context.Background(), "pipeline")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "llm_error"))
}

func TestServiceConditions(t *testing.T) {
	svc := newTestService(t, &stubChatClient{}, &stubSource{reading: epicReading}, &stubCache{})

	resp, err := svc.Conditions(context.Background(), "pipeline")
	require.NoError(t, err)
	require.Equal(t, testSpot, resp.Spot)
	require.Equal(t, epicReading, resp.Reading)
	require.Equal(t, 100.0, resp.Score)
	require.Equal(t, "2026-08-30T12:00:00Z", resp.Timestamp)
}

func TestServiceConditionsEmptyID(t *testing.T) {
	svc := newTestService(t, &stubChatClient{}, &stubSource{reading: epicReading}, &stubCache{})

	_, err := svc.Conditions(context.Background(), "   ")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceRankingsOrdersAndSkipsFailures(t *testing.T) {
	flat := conditions.Reading{WaveHeight: 0.5, WavePeriod: 4, WindSpeed: 28, SwellHeight: 1, SwellPeriod: 5}
	spots := []Spot{
		{ID: "flatville", Name: "Flatville"},
		{ID: "broken", Name: "Broken Pier"},
		{ID: "pipeline", Name: "Pipeline"},
	}
	source := &stubSource{
		perSpot: map[string]conditions.Reading{
			"flatville": flat,
			"pipeline":  epicReading,
		},
		errPerSpot: map[string]error{
			"broken": errors.New("sensor offline"),
		},
	}

	svc := &service{
		cfg:    testConfig(),
		spots:  &stubSpotRepo{spots: spots},
		source: source,
		client: &stubChatClient{},
		cache:  &stubCache{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    fixedNow,
	}

	ranked, err := svc.Rankings(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	require.Equal(t, "pipeline", ranked[0].SpotID)
	require.Equal(t, 100.0, ranked[0].Score)
	require.Equal(t, epicReading.WaveHeight, ranked[0].WaveHeight)
	require.Equal(t, "flatville", ranked[1].SpotID)
	require.Equal(t, 30.0, ranked[1].Score)
}

func TestServiceRankingsKeepsIDsWhenNamesCollide(t *testing.T) {
	flat := conditions.Reading{WaveHeight: 0.5, WavePeriod: 4, WindSpeed: 28}
	spots := []Spot{
		{ID: "sunset-north", Name: "Sunset"},
		{ID: "sunset-south", Name: "Sunset"},
	}
	source := &stubSource{
		perSpot: map[string]conditions.Reading{
			"sunset-north": flat,
			"sunset-south": epicReading,
		},
	}

	svc := &service{
		cfg:    testConfig(),
		spots:  &stubSpotRepo{spots: spots},
		source: source,
		client: &stubChatClient{},
		cache:  &stubCache{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    fixedNow,
	}

	ranked, err := svc.Rankings(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	require.Equal(t, "sunset-south", ranked[0].SpotID)
	require.Equal(t, "sunset-north", ranked[1].SpotID)
}

func TestServiceSpots(t *testing.T) {
	svc := newTestService(t, &stubChatClient{}, &stubSource{reading: epicReading}, &stubCache{})

	spots, err := svc.Spots(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Spot{testSpot}, spots)
}

func newTestService(t *testing.T, chat *stubChatClient, source *stubSource, cache *stubCache) *service {
	t.Helper()
	return &service{
		cfg:    testConfig(),
		spots:  &stubSpotRepo{spots: []Spot{testSpot}},
		source: source,
		client: chat,
		cache:  cache,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    fixedNow,
	}
}

func testConfig() Config {
	return Config{
		Model:       "gpt-test",
		Temperature: 0.7,
		MaxTokens:   1000,
		Prompt:      "You are a professional surf analyst and ASCII artist.",
		CacheTTL:    10 * time.Minute,
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

type stubChatClient struct {
	responses []chatgpt.ChatCompletionResponse
	err       error
	calls     int
}

func (s *stubChatClient) CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	if s.calls >= len(s.responses) {
		return chatgpt.ChatCompletionResponse{}, nil
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

type stubSource struct {
	reading    conditions.Reading
	err        error
	perSpot    map[string]conditions.Reading
	errPerSpot map[string]error
}

func (s *stubSource) Fetch(ctx context.Context, spot Spot) (conditions.Reading, error) {
	if err, ok := s.errPerSpot[spot.ID]; ok {
		return conditions.Reading{}, err
	}
	if r, ok := s.perSpot[spot.ID]; ok {
		return r, nil
	}
	if s.err != nil {
		return conditions.Reading{}, s.err
	}
	return s.reading, nil
}

type stubSpotRepo struct {
	spots []Spot
	err   error
}

func (s *stubSpotRepo) ListSpots(ctx context.Context) ([]Spot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.spots, nil
}

func (s *stubSpotRepo) GetSpot(ctx context.Context, id string) (Spot, bool, error) {
	if s.err != nil {
		return Spot{}, false, s.err
	}
	for _, spot := range s.spots {
		if spot.ID == id {
			return spot, true, nil
		}
	}
	return Spot{}, false, nil
}

type stubCache struct {
	report   Report
	hit      bool
	getErr   error
	saveErr  error
	saved    []Report
	savedTTL time.Duration
}

func (s *stubCache) GetReport(ctx context.Context, spotID string) (Report, bool, error) {
	if s.getErr != nil {
		return Report{}, false, s.getErr
	}
	return s.report, s.hit, nil
}

func (s *stubCache) SaveReport(ctx context.Context, report Report, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, report)
	s.savedTTL = ttl
	return nil
}
