package export

import (
	"github.com/saulo-duarte/quizforge-lambda/internal/googlesheets"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
)

type ExportContainer struct {
	Handler *Handler
}

func NewExportContainer(appender googlesheets.Appender, defaultTab string, m *metrics.Metrics) *ExportContainer {
	service := NewService(appender, defaultTab, m)
	handler := NewHandler(service)

	return &ExportContainer{
		Handler: handler,
	}
}
