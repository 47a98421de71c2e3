package quiz

import (
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
)

const (
	RulePayloadRequired   = "payload with passage and questions is required"
	RuleQuestionsRequired = "at least one question is required for export"
	RuleQuestionText      = "each question must have text"
	RuleFourOptions       = "each question must have 4 options"
)

// ValidateForExport checks the gate that runs before any spreadsheet call. The
// passage may be empty; option entries may be empty strings.
func ValidateForExport(p QuizPayload) error {
	if len(p.Questions) == 0 {
		return &apperror.ValidationError{Rule: RuleQuestionsRequired}
	}
	for i, q := range p.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return &apperror.ValidationError{Rule: RuleQuestionText, Question: i + 1}
		}
		if len(q.Options) < OptionCount {
			return &apperror.ValidationError{Rule: RuleFourOptions, Question: i + 1}
		}
	}
	return nil
}
