package quiz

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
)

var (
	leadingFence  = regexp.MustCompile("(?i)^```(json)?")
	trailingFence = regexp.MustCompile("```$")
	embeddedJSON  = regexp.MustCompile(`(?s)\{.*\}`)

	zeroBasedDigit = regexp.MustCompile(`^[0-3]$`)
	oneBasedDigit  = regexp.MustCompile(`^[1-4]$`)
	optionLetter   = regexp.MustCompile(`^[A-Da-d]$`)
)

// answerKeys are the field names a model may use for the answer, in lookup order.
var answerKeys = []string{"correct_index", "correctIndex", "answer_index", "answerIndex", "answer"}

var errNoObject = errors.New("no JSON object found in model output")

// Normalize turns raw model output into a payload whose questions each carry
// exactly four options and an in-range correct index.
func Normalize(raw string) (*QuizPayload, error) {
	doc, err := extractObject(raw)
	if err != nil {
		return nil, &apperror.ParseError{Err: err}
	}

	root := gjson.Parse(doc)
	payload := &QuizPayload{
		Passage:   root.Get("passage").String(),
		Questions: []QuizItem{},
	}

	questions := root.Get("questions")
	if !questions.IsArray() {
		return payload, nil
	}
	questions.ForEach(func(_, q gjson.Result) bool {
		payload.Questions = append(payload.Questions, normalizeItem(q))
		return true
	})
	return payload, nil
}

func extractObject(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = leadingFence.ReplaceAllString(cleaned, "")
	cleaned = trailingFence.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if isObject(cleaned) {
		return cleaned, nil
	}
	if match := embeddedJSON.FindString(cleaned); match != "" && isObject(match) {
		return match, nil
	}
	return "", errNoObject
}

func isObject(s string) bool {
	return gjson.Valid(s) && gjson.Parse(s).IsObject()
}

func normalizeItem(q gjson.Result) QuizItem {
	options := stringifyOptions(q.Get("options"), OptionCount)
	correct := CoerceCorrectIndex(answerValue(q), options)

	for len(options) < OptionCount {
		options = append(options, "")
	}

	return QuizItem{
		Question:     strings.TrimSpace(q.Get("question").String()),
		Options:      options,
		CorrectIndex: correct,
		Explanation:  strings.TrimSpace(q.Get("explanation").String()),
	}
}

// stringifyOptions keeps at most limit entries; limit < 0 keeps them all.
func stringifyOptions(v gjson.Result, limit int) []string {
	options := []string{}
	if !v.IsArray() {
		return options
	}
	v.ForEach(func(_, o gjson.Result) bool {
		if limit >= 0 && len(options) == limit {
			return false
		}
		options = append(options, o.String())
		return true
	})
	return options
}

func answerValue(q gjson.Result) gjson.Result {
	for _, key := range answerKeys {
		if v := q.Get(key); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// CoerceCorrectIndex maps the many answer encodings a model produces onto a
// 0-based option index. Rules are tried in order and the first match wins:
// integer 0-3, integer 1-4 as 1-based, digit strings with the same two
// readings, a letter A-D, then a case-insensitive match on option text.
// Anything else is 0.
func CoerceCorrectIndex(v gjson.Result, options []string) int {
	return clampIndex(coerce(v, options))
}

func coerce(v gjson.Result, options []string) int {
	switch v.Type {
	case gjson.Number:
		if v.Num != math.Trunc(v.Num) {
			return 0
		}
		n := int(v.Num)
		if n >= 0 && n <= 3 {
			return n
		}
		if n >= 1 && n <= 4 {
			return n - 1
		}
		return 0
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		switch {
		case zeroBasedDigit.MatchString(s):
			n, _ := strconv.Atoi(s)
			return n
		case oneBasedDigit.MatchString(s):
			n, _ := strconv.Atoi(s)
			return n - 1
		case optionLetter.MatchString(s):
			return int(strings.ToUpper(s)[0] - 'A')
		}
		for i, o := range options {
			if strings.EqualFold(strings.TrimSpace(o), s) {
				return i
			}
		}
	}
	return 0
}

func clampIndex(n int) int {
	if n < 0 || n >= OptionCount {
		return 0
	}
	return n
}
