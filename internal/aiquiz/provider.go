package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

// Provider sends a single prompt to one model of a text-generation API.
type Provider interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	DefaultModels() []string
}

// ProviderError normalizes SDK failures so the client can decide on retries.
// StatusCode is 0 when the failure did not come with an HTTP status.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

var geminiDefaultModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}

type geminiProvider struct {
	client      *genai.Client
	temperature float32
}

func NewGeminiProvider(ctx context.Context, apiKey string, temperature float32) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, temperature: temperature}, nil
}

func (p *geminiProvider) DefaultModels() []string { return geminiDefaultModels }

func (p *geminiProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)

	result, err := p.client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(p.temperature),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Debug("Gemini request failed")
		return "", geminiError(err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)
	return raw, nil
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
