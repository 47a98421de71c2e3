package aiquiz

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
)

var (
	ErrEmptyResponse = errors.New("empty response from model")

	retriableMessage = regexp.MustCompile(`(?i)overloaded|rate|unavailable`)
)

type attemptState int

const (
	stateAttempting attemptState = iota
	stateRetrying
	stateSucceeded
	stateExhausted
)

// Client walks the candidate model list, retrying rate-limit and overload
// failures with exponential backoff before falling through to the next model.
type Client struct {
	provider  Provider
	model     string
	fallbacks []string
	metrics   *metrics.Metrics

	jitter func() time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
}

type ClientOption func(*Client)

// WithSleep replaces the wait between retries.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) ClientOption {
	return func(c *Client) { c.sleep = fn }
}

// WithJitter replaces the random jitter added to each backoff.
func WithJitter(fn func() time.Duration) ClientOption {
	return func(c *Client) { c.jitter = fn }
}

func NewClient(provider Provider, settings config.ProviderSettings, m *metrics.Metrics, opts ...ClientOption) *Client {
	c := &Client{
		provider:  provider,
		model:     settings.Model,
		fallbacks: settings.Fallbacks,
		metrics:   m,
		jitter:    randomJitter,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Models returns the ordered candidate list for a call with the given primary model.
func (c *Client) Models(primary string) []string {
	return CandidateModels(primary, c.model, c.fallbacks, c.provider.DefaultModels())
}

// Generate returns the first non-empty text produced by any candidate model.
func (c *Client) Generate(ctx context.Context, prompt, primary string) (string, error) {
	models := c.Models(primary)

	var lastErr error
	for i, model := range models {
		text, err := c.tryModel(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", &apperror.GenerationError{Models: models[:i+1], Err: ctxErr}
		}
		config.WithContext(ctx).WithError(err).WithField("model", model).Warn("Model failed, trying next candidate")
	}
	if lastErr == nil {
		lastErr = errors.New("no candidate models configured")
	}
	return "", &apperror.GenerationError{Models: models, Err: lastErr}
}

func (c *Client) tryModel(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)

	var (
		state   = stateAttempting
		attempt int
		delay   time.Duration
		text    string
		lastErr error
	)

	for {
		switch state {
		case stateAttempting:
			log.WithField("attempt", attempt).Debug("Calling model")
			out, err := c.provider.Generate(ctx, model, prompt)
			switch {
			case err == nil && strings.TrimSpace(out) != "":
				text = out
				c.metrics.GenerationAttempt(model, metrics.OutcomeSuccess)
				state = stateSucceeded
			case err == nil:
				lastErr = ErrEmptyResponse
				c.metrics.GenerationAttempt(model, metrics.OutcomeEmpty)
				state = stateExhausted
			case IsRetriable(err) && attempt < MaxRetries:
				lastErr = err
				delay = Backoff(attempt) + c.jitter()
				c.metrics.GenerationAttempt(model, metrics.OutcomeRetry)
				state = stateRetrying
			default:
				lastErr = err
				c.metrics.GenerationAttempt(model, metrics.OutcomeFailed)
				state = stateExhausted
			}

		case stateRetrying:
			log.WithError(lastErr).WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay.String(),
			}).Info("Retriable provider failure, backing off")
			if err := c.sleep(ctx, delay); err != nil {
				return "", err
			}
			attempt++
			state = stateAttempting

		case stateSucceeded:
			return text, nil

		case stateExhausted:
			return "", lastErr
		}
	}
}

// IsRetriable reports whether err is a rate-limit or overload failure.
func IsRetriable(err error) bool {
	if err == nil {
		return false
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		if providerErr.StatusCode == http.StatusTooManyRequests || providerErr.StatusCode == http.StatusServiceUnavailable {
			return true
		}
		return retriableMessage.MatchString(providerErr.Message)
	}
	return retriableMessage.MatchString(err.Error())
}
