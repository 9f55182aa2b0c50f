package parse

import (
	"regexp"
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

var (
	hDescription = heading{"description", "описание"}
	hCategories  = heading{"categories", "категории"}
	hConnections = heading{"connections", "связи"}

	synthesisHeadings = []heading{hDescription, hCategories, hConnections}

	lOrigin = label{"origin", "происхождение", "источник"}

	// source (-> | <-> | <-) target (type): description
	connectionLineRe = regexp.MustCompile(`^(.+?)\s*(<->|->|<-)\s*(.+?)\s*\(([^)]+)\)\s*:?\s*(.*)$`)
)

// Synthesis extracts a SynthesisDraft: a title line, a description
// section, category sub-headings and connection bullets. The `<-` arrow is
// mapped to directed without swapping source and target, reproducing the
// original behavior.
func Synthesis(text string) models.SynthesisDraft {
	draft := models.SynthesisDraft{
		Categories:  []models.CategoryDraft{},
		Connections: []models.ConnectionDraft{},
	}

	draft.Name = titleLine(text)
	draft.Description = section(text, hDescription, synthesisHeadings)
	if draft.Description == "" && draft.Name == "" {
		draft.Description = strings.TrimSpace(text)
		return draft
	}

	for _, sub := range subSections(section(text, hCategories, synthesisHeadings)) {
		name, body := sub[0], sub[1]
		cat := models.CategoryDraft{Name: strings.TrimSpace(name)}
		if origin, ok := labeledValue(body, lOrigin, []label{lOrigin}); ok {
			cat.OriginNote = origin
			cat.Definition = descriptionBefore(body, []label{lOrigin})
		} else {
			cat.Definition = strings.TrimSpace(body)
		}
		draft.Categories = append(draft.Categories, cat)
	}

	draft.Connections = connectionDrafts(section(text, hConnections, synthesisHeadings))
	return draft
}

// titleLine returns the first "# " heading, or the first non-empty line
// when the reply skips markdown.
func titleLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
		if strings.HasPrefix(trimmed, "#") {
			// Some other heading came first; no title line.
			return ""
		}
		return trimmed
	}
	return ""
}

func connectionDrafts(body string) []models.ConnectionDraft {
	out := []models.ConnectionDraft{}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if bulletRe.MatchString(line) {
			entry := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))

			// An indented "- Origin: ..." bullet belongs to the
			// previous connection, not a new one.
			if origin, ok := matchLabel(entry, lOrigin); ok && len(out) > 0 {
				out[len(out)-1].OriginNote = origin
				continue
			}

			m := connectionLineRe.FindStringSubmatch(entry)
			if m == nil {
				continue
			}
			out = append(out, models.ConnectionDraft{
				SourceCategoryName: strings.TrimSpace(m[1]),
				TargetCategoryName: strings.TrimSpace(m[3]),
				Type:               strings.TrimSpace(m[4]),
				Direction:          directionFor(m[2]),
				Description:        strings.TrimSpace(m[5]),
			})
			continue
		}
		// Trailing non-bulleted origin note line.
		if origin, ok := matchLabel(trimmed, lOrigin); ok && len(out) > 0 {
			out[len(out)-1].OriginNote = origin
		}
	}
	return out
}

func directionFor(arrow string) models.Direction {
	if arrow == "<->" {
		return models.DirectionBidirectional
	}
	// "<-" is deliberately kept directed without endpoint swap.
	return models.DirectionDirected
}
