package export

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/googlesheets"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type ExportRequest struct {
	SheetURLOrID string          `json:"sheetUrlOrId"`
	Payload      json.RawMessage `json:"payload"`
	SheetName    string          `json:"sheetName,omitempty"`
}

type Service interface {
	Export(ctx context.Context, req ExportRequest) (*googlesheets.AppendResult, error)
}

type service struct {
	appender   googlesheets.Appender
	defaultTab string
	metrics    *metrics.Metrics
}

func NewService(appender googlesheets.Appender, defaultTab string, m *metrics.Metrics) Service {
	if defaultTab == "" {
		defaultTab = "Sheet1"
	}
	return &service{appender: appender, defaultTab: defaultTab, metrics: m}
}

// Export validates the payload and appends its rows. Nothing is written
// unless every check passes.
func (s *service) Export(ctx context.Context, req ExportRequest) (*googlesheets.AppendResult, error) {
	sheetID, err := googlesheets.ParseSheetID(req.SheetURLOrID)
	if err != nil {
		s.metrics.Export(metrics.OutcomeFailed, 0)
		return nil, err
	}

	payload, err := quiz.DecodePayload(req.Payload)
	if err != nil {
		s.metrics.Export(metrics.OutcomeFailed, 0)
		return nil, err
	}
	if err := quiz.ValidateForExport(*payload); err != nil {
		s.metrics.Export(metrics.OutcomeFailed, 0)
		return nil, err
	}

	tab := strings.TrimSpace(req.SheetName)
	if tab == "" {
		tab = s.defaultTab
	}

	rows := quiz.ToRows(*payload)
	result, err := s.appender.Append(ctx, sheetID, tab, rows)
	if err != nil {
		s.metrics.Export(metrics.OutcomeFailed, 0)
		return nil, err
	}

	s.metrics.Export(metrics.OutcomeSuccess, int(result.UpdatedRows))
	return result, nil
}
