package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, settings config.Generation, m *metrics.Metrics) *AIQuizContainer {
	log := config.WithContext(ctx).WithField("provider", settings.Provider)

	var service Service
	provider, err := NewProvider(ctx, settings)
	if err != nil {
		log.WithError(err).Warn("Generation provider unavailable, generate requests will fail")
		service = NewUnavailableService(err, m)
	} else {
		service = NewService(NewClient(provider, settings.Active(), m), m)
		log.Info("Generation provider ready")
	}

	return &AIQuizContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
