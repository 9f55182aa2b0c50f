package parse

import (
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// Keyword vocabularies checked case-insensitively in both Russian and
// English. Stems are used for the Russian entries so that case endings do
// not matter.

var severityLowMarkers = []string{
	"minor", "low", "slight",
	"незначительн", "несущественн", "низк", "слаб",
}

var severityHighMarkers = []string{
	"critical", "high", "severe", "major", "fundamental",
	"критич", "серьезн", "серьёзн", "высок", "фундаментальн",
}

// inferSeverity maps bullet text to a severity, defaulting to medium when
// no marker matches.
func inferSeverity(text string) models.Severity {
	lower := strings.ToLower(text)
	for _, m := range severityHighMarkers {
		if strings.Contains(lower, m) {
			return models.SeverityHigh
		}
	}
	for _, m := range severityLowMarkers {
		if strings.Contains(lower, m) {
			return models.SeverityLow
		}
	}
	return models.SeverityMedium
}

var (
	categoryNouns   = []string{"category", "categories", "категор"}
	connectionNouns = []string{"connection", "relation", "link", "связ", "отношени"}
	addVerbs        = []string{"add", "new", "introduce", "creat", "добав", "нов", "введ", "созда"}
)

// classifySuggestion maps suggestion text to one of the four kinds. The
// open-ended fallback is modify_connection, matching the original
// behavior.
func classifySuggestion(text string) models.SuggestionKind {
	lower := strings.ToLower(text)
	add := containsAny(lower, addVerbs)
	if containsAny(lower, categoryNouns) {
		if add {
			return models.SuggestAddCategory
		}
		return models.SuggestModifyCategory
	}
	if containsAny(lower, connectionNouns) {
		if add {
			return models.SuggestAddConnection
		}
		return models.SuggestModifyConnection
	}
	return models.SuggestModifyConnection
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// isAffirmative reports whether text is the source language's word for
// "yes" (or the English one), case-insensitively, with nothing else around
// it.
func isAffirmative(text string) bool {
	s := strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(text), ".!")))
	return s == "да" || s == "yes"
}

// NameResolver resolves a free-text name to an entity ID. The default is
// exact case-insensitive matching with silent drops; it is injected so a
// fuzzy strategy can replace it without touching the parsers.
type NameResolver func(name string) (id string, ok bool)

// GraphCategoryResolver builds the default resolver over a graph's
// category names.
func GraphCategoryResolver(g *models.ConceptGraph) NameResolver {
	return func(name string) (string, bool) {
		c, ok := g.CategoryByName(strings.TrimSpace(name))
		if !ok {
			return "", false
		}
		return c.ID, true
	}
}
