package aiquiz

import (
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type Strategy string

const (
	StrategyReading       Strategy = "reading"
	StrategyCurrentAffair Strategy = "current-affairs"
	StrategyLegal         Strategy = "legal-reasoning"
	StrategyLogical       Strategy = "logical-reasoning"
	StrategyQuant         Strategy = "quantitative"
)

// Template builds the prompt for one subject strategy.
type Template struct {
	Strategy     Strategy
	MaxQuestions int
	build        func(req quiz.GenerationRequest, count int) string
}

// Build clamps the requested count into [1, MaxQuestions] and renders the prompt.
func (t Template) Build(req quiz.GenerationRequest) string {
	return t.build(req, t.Clamp(req.Count(DefaultQuestionCount)))
}

func (t Template) Clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > t.MaxQuestions {
		return t.MaxQuestions
	}
	return n
}

var (
	readingTemplate       = Template{Strategy: StrategyReading, MaxQuestions: 10, build: readingPrompt}
	currentAffairTemplate = Template{Strategy: StrategyCurrentAffair, MaxQuestions: 12, build: currentAffairsPrompt}
	legalTemplate         = Template{Strategy: StrategyLegal, MaxQuestions: 12, build: legalPrompt}
	logicalTemplate       = Template{Strategy: StrategyLogical, MaxQuestions: 12, build: logicalPrompt}
	quantTemplate         = Template{Strategy: StrategyQuant, MaxQuestions: 10, build: quantPrompt}
)

var templatesBySubject = map[string]Template{
	"english":                 readingTemplate,
	"english language":        readingTemplate,
	"current affairs":         currentAffairTemplate,
	"current affairs & gk":    currentAffairTemplate,
	"gk":                      currentAffairTemplate,
	"legal":                   legalTemplate,
	"legal reasoning":         legalTemplate,
	"logical":                 logicalTemplate,
	"logical reasoning":       logicalTemplate,
	"quant":                   quantTemplate,
	"quantitative techniques": quantTemplate,
}

// SelectTemplate resolves a free-form subject label. Unknown labels get the
// reading template.
func SelectTemplate(subject string) Template {
	key := strings.Join(strings.Fields(strings.ToLower(subject)), " ")
	if t, ok := templatesBySubject[key]; ok {
		return t
	}
	return readingTemplate
}
