package synthesis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

func sourceGraphs() []*models.ConceptGraph {
	return []*models.ConceptGraph{
		{
			ConceptID: "concept-a",
			Name:      "Eleatic Monism",
			Categories: []models.Category{
				{ID: "a1", Name: "Being"},
			},
		},
		{
			ConceptID: "concept-b",
			Name:      "Heraclitean Flux",
			Categories: []models.Category{
				{ID: "b1", Name: "Becoming"},
			},
		},
	}
}

func TestMaterialize_OrdinalIDsAndOrigins(t *testing.T) {
	draft := models.SynthesisDraft{
		Name:        "Processual Monism",
		Description: "Unity grounded in differentiation.",
		Categories: []models.CategoryDraft{
			{Name: "Unity", Definition: "Ground of determination.", OriginNote: "Being"},
			{Name: "Multiplicity", Definition: "Differentiated field.", OriginNote: "transformed from Becoming"},
			{Name: "Mediation", Definition: "New mediating category."},
		},
		Connections: []models.ConnectionDraft{
			{
				SourceCategoryName: "Unity",
				TargetCategoryName: "Multiplicity",
				Type:               "causal",
				Direction:          models.DirectionDirected,
				Description:        "grounds",
				OriginNote:         "from Eleatic Monism",
			},
		},
	}

	graph, origins := Materialize(draft, sourceGraphs())

	require.Len(t, graph.Categories, 3)
	assert.Equal(t, "cat-1", graph.Categories[0].ID)
	assert.Equal(t, "cat-2", graph.Categories[1].ID)
	assert.Equal(t, "cat-3", graph.Categories[2].ID)

	require.Len(t, graph.Connections, 1)
	conn := graph.Connections[0]
	assert.Equal(t, "conn-1", conn.ID)
	assert.Equal(t, "cat-1", conn.SourceCategoryID)
	assert.Equal(t, "cat-2", conn.TargetCategoryID)

	want := models.OriginMapping{
		Categories: map[string]models.ElementOrigin{
			// Exact match carries no transformation note; containment
			// keeps the note; a missing note means no entry at all.
			"cat-1": {OriginConceptID: "concept-a", OriginCategoryID: "a1"},
			"cat-2": {OriginConceptID: "concept-b", OriginCategoryID: "b1", Transformation: "transformed from Becoming"},
		},
		Connections: map[string]models.ElementOrigin{
			// Concept-name containment resolves to the concept only.
			"conn-1": {OriginConceptID: "concept-a", Transformation: "from Eleatic Monism"},
		},
	}
	if diff := cmp.Diff(want, origins); diff != "" {
		t.Errorf("origin mapping mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, graph.Validate())
}

func TestMaterialize_DropsUnresolvedEndpoints(t *testing.T) {
	draft := models.SynthesisDraft{
		Name: "Partial",
		Categories: []models.CategoryDraft{
			{Name: "Unity"},
		},
		Connections: []models.ConnectionDraft{
			{SourceCategoryName: "Unity", TargetCategoryName: "Nowhere", Type: "causal", Direction: models.DirectionDirected},
		},
	}

	graph, origins := Materialize(draft, nil)

	assert.Len(t, graph.Categories, 1)
	assert.Empty(t, graph.Connections)
	assert.Empty(t, origins.Connections)
}

func TestMaterialize_UnmatchableOriginDropped(t *testing.T) {
	draft := models.SynthesisDraft{
		Categories: []models.CategoryDraft{
			{Name: "Unity", OriginNote: "entirely new"},
		},
	}

	_, origins := Materialize(draft, sourceGraphs())
	assert.Empty(t, origins.Categories)
}
