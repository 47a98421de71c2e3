package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/export"
	"github.com/saulo-duarte/quizforge-lambda/internal/googlesheets"
	"github.com/saulo-duarte/quizforge-lambda/internal/health"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
	"github.com/saulo-duarte/quizforge-lambda/internal/router"
	"github.com/saulo-duarte/quizforge-lambda/internal/subjects"
)

type Container struct {
	Settings              *config.Settings
	Metrics               *metrics.Metrics
	AIQuizContainer       *aiquiz.AIQuizContainer
	GoogleSheetsContainer *googlesheets.GoogleSheetsContainer
	ExportContainer       *export.ExportContainer
	SubjectsHandler       *subjects.Handler
	HealthHandler         *health.Handler
}

// New loads settings from the environment and wires every component.
func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(settings.Env, settings.LogLevel)

	return Build(ctx, settings)
}

// Build wires the components for already-loaded settings.
func Build(ctx context.Context, settings *config.Settings) (*Container, error) {
	catalog, err := subjects.Load()
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	m := metrics.New()
	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, settings.Generation, m)
	sheetsContainer := googlesheets.NewGoogleSheetsContainer(ctx, settings.Sheets)
	exportContainer := export.NewExportContainer(sheetsContainer.Appender, settings.Sheets.TabName, m)

	return &Container{
		Settings:              settings,
		Metrics:               m,
		AIQuizContainer:       aiQuizContainer,
		GoogleSheetsContainer: sheetsContainer,
		ExportContainer:       exportContainer,
		SubjectsHandler:       subjects.NewHandler(catalog),
		HealthHandler:         health.NewHandler(settings, sheetsContainer.Source),
	}, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		AIQuizHandler:   c.AIQuizContainer.Handler,
		ExportHandler:   c.ExportContainer.Handler,
		SubjectsHandler: c.SubjectsHandler,
		HealthHandler:   c.HealthHandler,
		Metrics:         c.Metrics,
		CORS:            c.Settings.CORS,
	})
}
