package aiquiz

import (
	"fmt"
	"math"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

// DefaultQuestionCount is used when the request omits questionsPerPassage.
const DefaultQuestionCount = 10

const defaultReadingTone = "narrative/critical/descriptive (pick whichever fits the material best)"

// SchemaBlock is appended verbatim to every prompt.
const SchemaBlock = `OUTPUT FORMAT
Respond with strict JSON only: no markdown fences, no commentary before or after. Use exactly this shape:
{
  "passage": string,
  "questions": [
    {
      "question": string,
      "options": [string, string, string, string],
      "correct_index": 0 | 1 | 2 | 3,
      "explanation": string
    }
  ]
}
correct_index is 0-based: the first option is 0, the fourth is 3.
Never give the answer as a letter (A/B/C/D); use correct_index only.
Each explanation must say why the correct option is best and why each distractor fails.`

const roleLine = "ROLE: You are an experienced setter of CLAT UG entrance-exam questions."

const distractorRules = `OPTIONS: Every question has exactly 4 options. Distractors must be close to the answer in plausibility and similar in length, mutually exclusive, and free of giveaways. Do not use "All of the above" or "None of the above". Exactly one option is clearly best.`

// BuildPrompt renders the prompt for the request's subject strategy.
func BuildPrompt(req quiz.GenerationRequest) string {
	return SelectTemplate(req.Subject).Build(req)
}

func focusLine(req quiz.GenerationRequest) string {
	base := strings.TrimSpace(req.CustomTopic)
	if base == "" {
		base = strings.TrimSpace(req.Subtopic)
	}

	if url := strings.TrimSpace(req.ArticleURL); url != "" {
		prefix := ""
		if base != "" {
			prefix = base + "; "
		}
		return fmt.Sprintf("FOCUS: %swrite a passage in the spirit of the article at %s. You cannot browse the web: infer the likely angle from the words in the URL and produce a self-contained passage that carries every fact the questions need.", prefix, url)
	}
	return fmt.Sprintf("FOCUS: %s. The passage must be self-contained and carry every fact the questions need.", base)
}

func assemble(difficulty string, req quiz.GenerationRequest, task string) string {
	return strings.Join([]string{
		roleLine,
		"DIFFICULTY: " + difficulty,
		focusLine(req),
		"",
		task,
		distractorRules,
		"",
		SchemaBlock,
	}, "\n")
}

func readingPrompt(req quiz.GenerationRequest, count int) string {
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = defaultReadingTone
	}
	task := fmt.Sprintf(`TASK: Write a 400–500 word passage in a %s tone. It must stand on its own without outside knowledge.
Then write %d multiple-choice questions on it:
- exactly 1 on the central idea
- exactly 1 on the author's tone
- exactly 1 inference question
- exactly 1 on the meaning of a word or phrase in context
- the remaining questions on factual detail.
Avoid ambiguity and absolute wording the passage does not support. Keep explanations short and comparative.`, tone, count)
	return assemble("a notch above recent CLAT papers; options should trap common misreadings while exactly one is supported by the passage.", req, task)
}

// currentAffairsSplit returns how many questions should need outside knowledge
// and how many should be answerable from the passage alone.
func currentAffairsSplit(count int) (nonDirect, direct int) {
	nonDirect = int(math.Max(1, math.Round(float64(count)*0.75)))
	if nonDirect > count {
		nonDirect = count
	}
	return nonDirect, count - nonDirect
}

func currentAffairsPrompt(req quiz.GenerationRequest, count int) string {
	nonDirect, direct := currentAffairsSplit(count)
	task := fmt.Sprintf(`TASK: Write a 400–500 word journalistic or editorial passage with balanced analysis and concrete facts. It should give rich context but does not have to contain every fact needed; avoid niche trivia.
Then write %d multiple-choice questions with this mix (a 70–80%% / 20–30%% split):
- %d NON-DIRECT questions that need widely known current affairs or general knowledge beyond the passage
- %d DIRECT questions answerable from a detail or inference in the passage.
For non-direct questions the explanation cites the outside fact; for direct ones it points to the passage. Prefer integrative questions on policy, institutions, timelines, comparative data and consequences over rote trivia.`, count, nonDirect, direct)
	return assemble("a notch above recent CLAT papers; options very close, plausible and mutually exclusive.", req, task)
}

func legalPrompt(req quiz.GenerationRequest, count int) string {
	task := fmt.Sprintf(`TASK: Write a 350–450 word legal reasoning passage that states the governing principle(s), their scope and limits, and one or two short illustrations. Everything needed must be in the passage; do not rely on statutes it does not state.
Then write %d multiple-choice questions mixing principle application to new facts (most of the set, with fine distinctions), inference, and recall of the principle. Only one option may fit the stated rule and facts.`, count)
	return assemble("a notch above recent CLAT papers; stress nuanced application with tight options.", req, task)
}

func logicalPrompt(req quiz.GenerationRequest, count int) string {
	task := fmt.Sprintf(`TASK: Write a 400–500 word neutral editorial passage with clear claims and supporting reasons.
Then write %d multiple-choice questions spread across inference, strengthen/weaken, assumption, principle and evaluate-the-argument types. Each has one best answer drawn strictly from the passage.`, count)
	return assemble("a notch above recent CLAT papers; options subtle and close.", req, task)
}

func quantPrompt(req quiz.GenerationRequest, count int) string {
	topic := strings.TrimSpace(req.Subtopic)
	task := fmt.Sprintf(`TASK: Write a 180–480 word passage that introduces a dataset (table, graph or survey) about %s. Include 8–18 concrete numbers such as quarterly values, category shares or year-over-year changes.
Then write %d multiple-choice questions that each need two or more calculation steps (percent change, ratios, weighted averages, comparisons). Keep numeric options tight and show the brief calculation in each explanation.`, topic, count)
	return assemble("a notch above recent CLAT papers; multi-step arithmetic with close numeric options.", req, task)
}
