package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError reports missing or unusable configuration such as API keys or
// spreadsheet credentials.
type ConfigError struct {
	Msg    string
	Remedy string
}

func (e *ConfigError) Error() string {
	if e.Remedy == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Remedy)
}

// ValidationError reports the first rule a client-supplied value violated.
// Question is the 1-based question number, or 0 when the rule is not tied to
// a specific question.
type ValidationError struct {
	Rule     string
	Question int
}

func (e *ValidationError) Error() string {
	if e.Question > 0 {
		return fmt.Sprintf("question %d: %s", e.Question, e.Rule)
	}
	return e.Rule
}

// GenerationError is returned once every candidate model has been exhausted.
type GenerationError struct {
	Models []string
	Err    error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("generation failed after trying %d model(s) [%s]", len(e.Models), strings.Join(e.Models, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ParseError means the provider output could not be recovered as a JSON object.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "LLM output could not be parsed"
	}
	return fmt.Sprintf("LLM output could not be parsed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExternalServiceError wraps a failure returned by a downstream API. Msg holds
// the provider's own message when one was available.
type ExternalServiceError struct {
	Service string
	Msg     string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Service, msg)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// HTTPStatus maps an error from the taxonomy to the status code rendered at
// the request boundary. Unknown errors are internal errors.
func HTTPStatus(err error) int {
	var (
		validationErr *ValidationError
		parseErr      *ParseError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
