package googlesheets

import (
	"regexp"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
)

const (
	RuleSheetRequired = "sheetUrlOrId is required"
	RuleSheetID       = "could not parse Google Sheet ID"
)

var (
	sheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([A-Za-z0-9_-]+)`)
	bareIDPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]{30,}$`)
)

// ParseSheetID accepts a spreadsheet URL or a bare id of at least 30
// URL-safe characters.
func ParseSheetID(urlOrID string) (string, error) {
	s := strings.TrimSpace(urlOrID)
	if s == "" {
		return "", &apperror.ValidationError{Rule: RuleSheetRequired}
	}
	if m := sheetURLPattern.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	if bareIDPattern.MatchString(s) {
		return s, nil
	}
	return "", &apperror.ValidationError{Rule: RuleSheetID}
}

// QuoteTab renders a tab name for A1 notation, doubling embedded quotes.
func QuoteTab(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}
