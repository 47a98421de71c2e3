package aiquiz

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

var openAIDefaultModels = []string{openai.GPT4o, openai.GPT4oMini}

type openAIProvider struct {
	client      *openai.Client
	temperature float32
}

func NewOpenAIProvider(apiKey string, temperature float32) Provider {
	return &openAIProvider{client: openai.NewClient(apiKey), temperature: temperature}
}

func (p *openAIProvider) DefaultModels() []string { return openAIDefaultModels }

func (p *openAIProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: p.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.WithError(err).Debug("OpenAI request failed")
		return "", openAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ProviderError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error(), Err: err}
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
