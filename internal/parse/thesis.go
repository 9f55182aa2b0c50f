package parse

import (
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

var (
	lSource        = label{"источник", "source", "sources"}
	lJustification = label{"обоснование", "justification"}

	thesisLabels = []label{lSource, lJustification}
)

// Theses extracts (text, sources, justification) triples from a numbered
// list and resolves source names against the graph's categories through
// resolve. Names that do not resolve are silently dropped; there is no
// fuzzy matching.
func Theses(text, thesisType, style string, usedWeights bool, resolve NameResolver) []models.ThesisDraft {
	out := []models.ThesisDraft{}

	for _, entry := range splitNumbered(text) {
		body := strings.TrimSpace(entry)
		if body == "" {
			continue
		}

		// The thesis text is everything before the first labeled
		// continuation line.
		var textLines []string
		for _, line := range strings.Split(body, "\n") {
			if isLabelBoundary(line, thesisLabels) {
				break
			}
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				textLines = append(textLines, trimmed)
			}
		}
		thesisText := strings.Join(textLines, " ")
		if thesisText == "" {
			continue
		}

		draft := models.ThesisDraft{
			Text: thesisText,
			DerivedFrom: models.ThesisOrigin{
				CategoryIDs:   []string{},
				ConnectionIDs: []string{},
			},
			Type:        thesisType,
			Style:       style,
			UsedWeights: usedWeights,
		}

		if sources, ok := labeledValue(body, lSource, thesisLabels); ok {
			for _, name := range strings.Split(sources, ",") {
				if id, ok := resolve(name); ok {
					draft.DerivedFrom.CategoryIDs = append(draft.DerivedFrom.CategoryIDs, id)
				}
			}
		}

		out = append(out, draft)
	}
	return out
}
