package aiquiz

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

var anthropicDefaultModels = []string{"claude-sonnet-4-5-20250929", "claude-3-5-haiku-latest"}

type anthropicProvider struct {
	client      anthropic.Client
	temperature float64
}

func NewAnthropicProvider(apiKey string, temperature float32) Provider {
	return &anthropicProvider{
		client:      anthropic.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0)),
		temperature: float64(temperature),
	}
}

func (p *anthropicProvider) DefaultModels() []string { return anthropicDefaultModels }

func (p *anthropicProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   8192,
		Temperature: param.NewOpt(p.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.WithError(err).Debug("Anthropic request failed")
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{StatusCode: apiErr.StatusCode, Message: apiErr.Error(), Err: err}
		}
		return "", &ProviderError{Message: err.Error(), Err: err}
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", nil
}
