package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
	"github.com/Jacob-Northcote/WaveView/internal/infra/config"
	"github.com/Jacob-Northcote/WaveView/internal/infra/llm/chatgpt"
	"github.com/Jacob-Northcote/WaveView/internal/infra/reportcache"
	"github.com/Jacob-Northcote/WaveView/internal/infra/spotrepo"
	"github.com/Jacob-Northcote/WaveView/internal/infra/surf"
	"github.com/Jacob-Northcote/WaveView/internal/infra/surf/simulated"
	"github.com/Jacob-Northcote/WaveView/internal/infra/surf/stormglass"
)

func provideReportConfig(cfg *config.Config) surfreport.Config {
	return surfreport.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Prompt:      cfg.Report.Prompt,
		CacheTTL:    cfg.Report.CacheTTL,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

// provideConditionsSource prefers live Stormglass data and degrades to the
// simulated source when no key is configured or the live call fails.
func provideConditionsSource(cfg *config.Config, logger *slog.Logger) surfreport.ConditionsSource {
	backup := simulated.NewSource()
	client, err := stormglass.NewClient(cfg.Surf.APIBaseURL, cfg.Surf.APIKey)
	if err != nil {
		logger.Info("stormglass api key not set, using simulated surf data")
		return backup
	}
	return surf.NewFallbackSource(client, backup, logger)
}

func provideSpotRepository(cfg *config.Config, logger *slog.Logger) surfreport.SpotRepository {
	fallback := spotrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Spots.Postgres.DSN)
	if dsn == "" {
		logger.Info("spots postgres dsn not set, using seeded memory catalog")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using seeded memory catalog", "error", err)
		return fallback
	}
	if cfg.Spots.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Spots.Postgres.MaxConns
	}
	if cfg.Spots.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Spots.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using seeded memory catalog", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using seeded memory catalog", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("spots postgres catalog enabled")
	return spotrepo.NewPostgresRepository(pool)
}

func provideReportCache(cfg *config.Config, logger *slog.Logger) surfreport.ReportCache {
	if cfg.Report.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return reportcache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return reportcache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("report valkey cache enabled", "addr", cfg.Report.Redis.Addr)
			return reportcache.NewValkeyStore(client, "report")
		}
	}
	return reportcache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Report.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Report.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Report.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
