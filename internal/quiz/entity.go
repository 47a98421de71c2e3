package quiz

// GenerationRequest is the body accepted by the generation endpoint.
type GenerationRequest struct {
	Subject             string `json:"subject"`
	Subtopic            string `json:"subtopic"`
	QuestionsPerPassage *int   `json:"questionsPerPassage,omitempty"`
	Tone                string `json:"tone,omitempty"`
	CustomTopic         string `json:"customTopic,omitempty"`
	ArticleURL          string `json:"articleUrl,omitempty"`
}

// Count returns the requested question count, or def when none was sent.
func (r GenerationRequest) Count(def int) int {
	if r.QuestionsPerPassage == nil {
		return def
	}
	return *r.QuestionsPerPassage
}

type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

type QuizPayload struct {
	Passage   string     `json:"passage"`
	Questions []QuizItem `json:"questions"`
}

// SheetRow is one spreadsheet row of at most OptionCount cells, columns A..D.
type SheetRow []string

const (
	OptionCount        = 4
	CorrectMarker      = "*"
	QuestionPointValue = "1"
)
