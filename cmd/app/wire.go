//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Jacob-Northcote/WaveView/internal/bootstrap"
	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
	"github.com/Jacob-Northcote/WaveView/internal/infra/config"
	"github.com/Jacob-Northcote/WaveView/internal/infra/llm/chatgpt"
	httpiface "github.com/Jacob-Northcote/WaveView/internal/interface/http"
	"github.com/Jacob-Northcote/WaveView/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideReportConfig,
		provideChatGPTClient,
		provideConditionsSource,
		provideSpotRepository,
		provideReportCache,
		surfreport.NewService,
		wire.Bind(new(surfreport.ChatClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
