package parse

import (
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// Validation extracts a ValidationResult from the model's reply. The reply
// is expected to carry four numbered top-level sections (general analysis,
// contradictions, missing elements, suggestions); when fewer than four are
// found, the whole text goes into GeneralAnalysis verbatim and all lists
// stay empty.
func Validation(text string) models.ValidationResult {
	result := models.ValidationResult{
		Contradictions:         []models.Issue{},
		MissingElements:        []models.Issue{},
		ImprovementSuggestions: []models.Suggestion{},
	}

	sections := splitNumbered(text)
	if len(sections) < 4 {
		result.GeneralAnalysis = strings.TrimSpace(text)
		return result
	}

	result.GeneralAnalysis = stripSectionTitle(sections[0])

	for _, b := range bullets(sections[1]) {
		result.Contradictions = append(result.Contradictions, models.Issue{
			Description: b,
			Severity:    inferSeverity(b),
		})
	}
	for _, b := range bullets(sections[2]) {
		result.MissingElements = append(result.MissingElements, models.Issue{
			Description: b,
			Severity:    inferSeverity(b),
		})
	}
	for _, b := range bullets(sections[3]) {
		result.ImprovementSuggestions = append(result.ImprovementSuggestions, models.Suggestion{
			Kind:        classifySuggestion(b),
			Description: b,
		})
	}
	return result
}

// stripSectionTitle drops a leading title line like "General analysis"
// when the section body continues below it.
func stripSectionTitle(body string) string {
	lines := strings.SplitN(body, "\n", 2)
	if len(lines) == 2 {
		first := normalizeHeading(lines[0])
		for _, t := range []string{"general analysis", "общий анализ"} {
			if first == t {
				return strings.TrimSpace(lines[1])
			}
		}
	}
	return strings.TrimSpace(body)
}
