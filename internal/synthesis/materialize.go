package synthesis

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// Materialize turns a textual synthesis draft into a graph with temporary
// ordinal entity IDs plus an origin mapping built from the draft's origin
// notes. Connection endpoints are resolved by exact case-insensitive name
// match within the draft; connections with unresolved endpoints are
// dropped with a warning.
func Materialize(draft models.SynthesisDraft, sources []*models.ConceptGraph) (models.ConceptGraph, models.OriginMapping) {
	graph := models.ConceptGraph{
		Name:        draft.Name,
		Description: draft.Description,
		Categories:  []models.Category{},
		Connections: []models.Connection{},
	}
	origins := models.OriginMapping{
		Categories:  map[string]models.ElementOrigin{},
		Connections: map[string]models.ElementOrigin{},
	}

	byName := make(map[string]string, len(draft.Categories))
	for i, cd := range draft.Categories {
		id := fmt.Sprintf("cat-%d", i+1)
		graph.Categories = append(graph.Categories, models.Category{
			ID:         id,
			Name:       cd.Name,
			Definition: cd.Definition,
		})
		byName[strings.ToLower(cd.Name)] = id

		if origin, ok := matchOrigin(cd.OriginNote, sources); ok {
			origins.Categories[id] = origin
		}
	}

	seq := 0
	for _, cnd := range draft.Connections {
		sourceID := byName[strings.ToLower(cnd.SourceCategoryName)]
		targetID := byName[strings.ToLower(cnd.TargetCategoryName)]
		if sourceID == "" || targetID == "" {
			log.Warn().
				Str("source", cnd.SourceCategoryName).
				Str("target", cnd.TargetCategoryName).
				Msg("dropping synthesized connection with unresolved endpoint")
			continue
		}
		seq++
		id := fmt.Sprintf("conn-%d", seq)
		graph.Connections = append(graph.Connections, models.Connection{
			ID:               id,
			SourceCategoryID: sourceID,
			TargetCategoryID: targetID,
			Type:             cnd.Type,
			Direction:        cnd.Direction,
			Description:      cnd.Description,
		})
		if origin, ok := matchOrigin(cnd.OriginNote, sources); ok {
			origins.Connections[id] = origin
		}
	}

	return graph, origins
}

// matchOrigin resolves an origin note against source concept and category
// names. Matching is exact case-insensitive on whole names, falling back to
// containment of a name inside the note; notes that resolve to a concept
// without an exact category match keep the note as the transformation.
func matchOrigin(note string, sources []*models.ConceptGraph) (models.ElementOrigin, bool) {
	note = strings.TrimSpace(note)
	if note == "" {
		return models.ElementOrigin{}, false
	}
	lower := strings.ToLower(note)

	for _, g := range sources {
		for _, c := range g.Categories {
			if strings.EqualFold(note, c.Name) {
				return models.ElementOrigin{OriginConceptID: g.ConceptID, OriginCategoryID: c.ID}, true
			}
		}
	}
	for _, g := range sources {
		for _, c := range g.Categories {
			if c.Name != "" && strings.Contains(lower, strings.ToLower(c.Name)) {
				return models.ElementOrigin{
					OriginConceptID:  g.ConceptID,
					OriginCategoryID: c.ID,
					Transformation:   note,
				}, true
			}
		}
		if g.Name != "" && strings.Contains(lower, strings.ToLower(g.Name)) {
			return models.ElementOrigin{OriginConceptID: g.ConceptID, Transformation: note}, true
		}
	}
	// The note names nothing we know; unresolved references are silently
	// dropped, same as thesis sourcing.
	return models.ElementOrigin{}, false
}
