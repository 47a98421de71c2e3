package aiquiz

import (
	"strings"

	"github.com/samber/lo"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

// CandidateModels orders the models to try: primary (or the configured default
// when primary is empty), configured fallbacks, then the provider's built-in
// defaults. Duplicates keep their first position.
func CandidateModels(primary, configured string, fallbacks, defaults []string) []string {
	first := strings.TrimSpace(primary)
	if first == "" {
		first = strings.TrimSpace(configured)
	}

	list := make([]string, 0, 1+len(fallbacks)+len(defaults))
	if first != "" {
		list = append(list, first)
	}
	list = append(list, config.CleanList(fallbacks)...)
	list = append(list, defaults...)
	return lo.Uniq(list)
}
