package quiz

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
)

// DecodePayload reads an editor-submitted payload. Unlike Normalize it keeps
// the submitted option count so ValidateForExport can reject short questions,
// and a correct_index that is not an integer is read as 0.
func DecodePayload(raw json.RawMessage) (*QuizPayload, error) {
	root := gjson.ParseBytes(raw)
	if len(raw) == 0 || !gjson.ValidBytes(raw) || !root.IsObject() {
		return nil, &apperror.ValidationError{Rule: RulePayloadRequired}
	}

	questions := root.Get("questions")
	if !questions.IsArray() {
		return nil, &apperror.ValidationError{Rule: RulePayloadRequired}
	}

	payload := &QuizPayload{
		Passage:   root.Get("passage").String(),
		Questions: []QuizItem{},
	}
	questions.ForEach(func(_, q gjson.Result) bool {
		payload.Questions = append(payload.Questions, QuizItem{
			Question:     strings.TrimSpace(q.Get("question").String()),
			Options:      stringifyOptions(q.Get("options"), -1),
			CorrectIndex: integerOrZero(q.Get("correct_index")),
			Explanation:  strings.TrimSpace(q.Get("explanation").String()),
		})
		return true
	})
	return payload, nil
}

func integerOrZero(v gjson.Result) int {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0
	}
	return int(v.Num)
}
