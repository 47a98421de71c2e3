package aiquiz

import (
	"context"
	"fmt"
	"strings"
)

// mockProvider returns canned output for local development. The answer keys use
// a different encoding per question, the way real models drift.
type mockProvider struct{}

func NewMockProvider() Provider { return mockProvider{} }

func (mockProvider) DefaultModels() []string { return []string{"mock"} }

func (mockProvider) Generate(_ context.Context, model, _ string) (string, error) {
	answers := []string{`0`, `"B"`, `"3"`, `"Option 4 for question 4"`}

	questions := make([]string, 0, len(answers))
	for i, answer := range answers {
		n := i + 1
		questions = append(questions, fmt.Sprintf(
			`{"question":"[Mock] Question %d about the passage?","options":["Option 1 for question %d","Option 2 for question %d","Option 3 for question %d","Option 4 for question %d"],"correct_index":%s,"explanation":"[Mock] Explanation for question %d."}`,
			n, n, n, n, n, answer, n))
	}

	return fmt.Sprintf("```json\n{\"passage\":\"[Mock] Passage generated by %s for local development.\",\"questions\":[%s]}\n```",
		model, strings.Join(questions, ",")), nil
}
