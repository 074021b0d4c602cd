package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/srinivasagudi0/Stark-Assistant/internal/adapters/fs"
	"github.com/srinivasagudi0/Stark-Assistant/internal/adapters/memory/slot"
	"github.com/srinivasagudi0/Stark-Assistant/internal/adapters/nlu/openai"
	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
	"github.com/srinivasagudi0/Stark-Assistant/internal/config"
	"github.com/srinivasagudi0/Stark-Assistant/internal/logging"
	"github.com/srinivasagudi0/Stark-Assistant/internal/ports"
)

type app struct {
	cfg        config.Config
	logger     *zap.Logger
	classifier ports.Classifier
	memory     ports.MemoryStore
	executor   ports.Executor
	clock      ports.Clock
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewFileLogger(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("wire session logger: %w", err)
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		classifier: openai.NewClient(http.DefaultClient, cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		memory:     slot.NewStore(),
		executor:   fs.NewExecutor(cfg.Executor.Root),
		clock:      ports.SystemClock{},
	}, nil
}

// newPipeline assembles the turn pipeline with the given confirmation
// policy. A nil confirm approves every action.
func (a *app) newPipeline(confirm application.ConfirmFunc) *application.Pipeline {
	return application.NewPipeline(a.classifier, a.memory, a.executor, a.clock, confirm, a.logger)
}
