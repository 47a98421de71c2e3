package quiz_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

func samplePayload() quiz.QuizPayload {
	return quiz.QuizPayload{
		Passage: "  A short passage.  ",
		Questions: []quiz.QuizItem{
			{Question: "First?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "b is right"},
			{Question: "Second?", Options: []string{"w", "x"}, CorrectIndex: 3},
		},
	}
}

func TestToRowsLayout(t *testing.T) {
	rows := quiz.ToRows(samplePayload())

	require.Len(t, rows, 14)
	assert.Equal(t, quiz.SheetRow{"A short passage."}, rows[0])
	assert.Equal(t, quiz.SheetRow{}, rows[1])
	assert.Equal(t, quiz.SheetRow{"First?", "1", "", "b is right"}, rows[2])
	assert.Equal(t, quiz.SheetRow{"", "a"}, rows[3])
	assert.Equal(t, quiz.SheetRow{"*", "b"}, rows[4])
	assert.Equal(t, quiz.SheetRow{}, rows[7])

	assert.Equal(t, quiz.SheetRow{"Second?", "1", "", ""}, rows[8])
	assert.Equal(t, quiz.SheetRow{"", ""}, rows[11])
	assert.Equal(t, quiz.SheetRow{"*", ""}, rows[12])
	assert.Equal(t, quiz.SheetRow{}, rows[13])
}

func TestToRowsWithoutPassage(t *testing.T) {
	p := samplePayload()
	p.Passage = "   "

	rows := quiz.ToRows(p)
	require.Len(t, rows, 13)
	assert.Equal(t, quiz.SheetRow{}, rows[0])
}

func TestValidateForExport(t *testing.T) {
	valid := samplePayload()
	valid.Questions[1].Options = []string{"", "", "", ""}
	assert.NoError(t, quiz.ValidateForExport(valid))

	cases := []struct {
		name     string
		payload  quiz.QuizPayload
		rule     string
		question int
	}{
		{"no questions", quiz.QuizPayload{Passage: "P"}, quiz.RuleQuestionsRequired, 0},
		{"blank question", quiz.QuizPayload{Questions: []quiz.QuizItem{{Question: " ", Options: make([]string, 4)}}}, quiz.RuleQuestionText, 1},
		{"short options", samplePayload(), quiz.RuleFourOptions, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := quiz.ValidateForExport(tc.payload)

			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.rule, validationErr.Rule)
			assert.Equal(t, tc.question, validationErr.Question)
		})
	}
}

func TestDecodePayloadKeepsOptionCount(t *testing.T) {
	raw := json.RawMessage(`{"passage":"","questions":[{"question":"Q","options":["a","b","c"],"correct_index":"B"},{"question":"R","options":["a","b","c","d","e"],"correct_index":2}]}`)

	p, err := quiz.DecodePayload(raw)
	require.NoError(t, err)

	require.Len(t, p.Questions, 2)
	assert.Len(t, p.Questions[0].Options, 3)
	assert.Equal(t, 0, p.Questions[0].CorrectIndex)
	assert.Len(t, p.Questions[1].Options, 5)
	assert.Equal(t, 2, p.Questions[1].CorrectIndex)

	err = quiz.ValidateForExport(*p)
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, quiz.RuleFourOptions, validationErr.Rule)
}

func TestDecodePayloadRejectsMalformed(t *testing.T) {
	for _, raw := range []string{``, `null`, `"text"`, `{"passage":"P"}`, `{"questions":"none"}`} {
		_, err := quiz.DecodePayload(json.RawMessage(raw))

		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr, "input %q", raw)
		assert.Equal(t, quiz.RulePayloadRequired, validationErr.Rule)
	}
}
