package quiz

import "strings"

// ToRows flattens a payload into the block layout the spreadsheet expects:
// the passage, a blank row, then per question a header row, four option rows
// with the correct one marked, and a blank row.
func ToRows(p QuizPayload) []SheetRow {
	rows := make([]SheetRow, 0, 2+len(p.Questions)*(OptionCount+2))

	if passage := strings.TrimSpace(p.Passage); passage != "" {
		rows = append(rows, SheetRow{passage})
	}
	rows = append(rows, SheetRow{})

	for _, q := range p.Questions {
		rows = append(rows, SheetRow{
			strings.TrimSpace(q.Question),
			QuestionPointValue,
			"",
			strings.TrimSpace(q.Explanation),
		})

		for i := 0; i < OptionCount; i++ {
			marker := ""
			if i == q.CorrectIndex {
				marker = CorrectMarker
			}
			option := ""
			if i < len(q.Options) {
				option = q.Options[i]
			}
			rows = append(rows, SheetRow{marker, option})
		}

		rows = append(rows, SheetRow{})
	}
	return rows
}
