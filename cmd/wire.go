package cmd

import (
	"fmt"

	"github.com/bnema/garmin-coach/internal/adapters/coach"
	"github.com/bnema/garmin-coach/internal/adapters/export"
	"github.com/bnema/garmin-coach/internal/adapters/render/summary"
	"github.com/bnema/garmin-coach/internal/adapters/telemetry/garmin"
	"github.com/bnema/garmin-coach/internal/application"
	"github.com/bnema/garmin-coach/internal/config"
	"github.com/bnema/garmin-coach/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	service   *application.Service
	telemetry ports.TelemetrySource
	formatter summary.Renderer
	exporter  ports.Exporter
	cfg       config.Config
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	backend, err := coach.New(cfg.Coach)
	if err != nil {
		return nil, fmt.Errorf("wire coaching backend: %w", err)
	}

	telemetry := garmin.NewClient(ports.SystemClock{})

	return &app{
		service:   application.NewService(telemetry, backend, coach.CannedResponse),
		telemetry: telemetry,
		formatter: summary.NewRenderer(),
		exporter:  export.JSON{},
		cfg:       cfg,
	}, nil
}
