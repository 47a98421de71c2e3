package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

var errMissingPassage = errors.New("model output has no passage")

type Service interface {
	Generate(ctx context.Context, req quiz.GenerationRequest) (*quiz.QuizPayload, error)
}

type service struct {
	client      *Client
	unavailable error
	metrics     *metrics.Metrics
}

func NewService(client *Client, m *metrics.Metrics) Service {
	return &service{client: client, metrics: m}
}

// NewUnavailableService returns a Service that fails every call with err,
// used when the provider could not be configured at startup.
func NewUnavailableService(err error, m *metrics.Metrics) Service {
	return &service{unavailable: err, metrics: m}
}

func (s *service) Generate(ctx context.Context, req quiz.GenerationRequest) (*quiz.QuizPayload, error) {
	template := SelectTemplate(req.Subject)
	outcome := metrics.OutcomeFailed
	defer func() { s.metrics.Generation(string(template.Strategy), outcome) }()

	if s.unavailable != nil {
		return nil, s.unavailable
	}

	prompt := template.Build(req)
	config.WithContext(ctx).WithField("strategy", template.Strategy).Debugf("Built prompt:\n%s", prompt)

	text, err := s.client.Generate(ctx, prompt, "")
	if err != nil {
		return nil, err
	}

	payload, err := quiz.Normalize(text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Passage) == "" {
		return nil, &apperror.ParseError{Err: errMissingPassage}
	}

	outcome = metrics.OutcomeSuccess
	return payload, nil
}

// NewProvider builds the provider selected by settings. A missing API key is
// reported as a ConfigError naming the variable to set.
func NewProvider(ctx context.Context, settings config.Generation) (Provider, error) {
	active := settings.Active()

	switch settings.Provider {
	case "mock":
		return NewMockProvider(), nil
	case "anthropic":
		if active.APIKey == "" {
			return nil, missingKey("ANTHROPIC_API_KEY")
		}
		return NewAnthropicProvider(active.APIKey, settings.Temperature), nil
	case "openai":
		if active.APIKey == "" {
			return nil, missingKey("OPENAI_API_KEY")
		}
		return NewOpenAIProvider(active.APIKey, settings.Temperature), nil
	case "", "gemini":
		if active.APIKey == "" {
			return nil, missingKey("GEMINI_API_KEY")
		}
		return NewGeminiProvider(ctx, active.APIKey, settings.Temperature)
	default:
		return nil, &apperror.ConfigError{
			Msg:    fmt.Sprintf("unknown GENERATION_PROVIDER %q", settings.Provider),
			Remedy: "use one of gemini, anthropic, openai or mock",
		}
	}
}

func missingKey(name string) error {
	return &apperror.ConfigError{
		Msg:    name + " is not set",
		Remedy: "export " + name + " or set MOCK_GENERATOR=true for local development",
	}
}
