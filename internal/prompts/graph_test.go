package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

func describeFixture() *models.ConceptGraph {
	return &models.ConceptGraph{
		ConceptID:   "concept-a",
		Name:        "Process Philosophy",
		Description: "Reality as becoming.",
		Categories: []models.Category{
			{
				ID:         "c1",
				Name:       "Becoming",
				Definition: "The primacy of change.",
				Attributes: []models.Attribute{
					{Type: "centrality", Value: 0.9, Justification: "core category"},
				},
			},
			{ID: "c2", Name: "Event", Definition: "The unit of process."},
		},
		Connections: []models.Connection{
			{
				ID:               "n1",
				SourceCategoryID: "c1",
				TargetCategoryID: "c2",
				Type:             "constitutive",
				Direction:        models.DirectionBidirectional,
				Description:      "mutual constitution",
				Attributes: []models.Attribute{
					{Type: "strength", Value: 0.5},
				},
			},
		},
	}
}

func TestDescribeGraph_WithWeights(t *testing.T) {
	out := DescribeGraph(describeFixture(), true)

	assert.Contains(t, out, "Concept: Process Philosophy")
	assert.Contains(t, out, "Reality as becoming.")
	assert.Contains(t, out, "- Becoming: The primacy of change.")
	assert.Contains(t, out, "* centrality: 0.90 (core category)")
	assert.Contains(t, out, "- Becoming <-> Event (constitutive): mutual constitution")
	assert.Contains(t, out, "* strength: 0.50")
}

func TestDescribeGraph_WeightsOmittedEntirely(t *testing.T) {
	out := DescribeGraph(describeFixture(), false)

	assert.NotContains(t, out, "centrality")
	assert.NotContains(t, out, "0.90")
	assert.NotContains(t, out, "strength")
	assert.Contains(t, out, "- Becoming: The primacy of change.")
}

func TestDescribeGraphs_NumbersConcepts(t *testing.T) {
	g := describeFixture()
	out := DescribeGraphs([]*models.ConceptGraph{g, g}, false)

	assert.Contains(t, out, "--- Concept 1 ---")
	assert.Contains(t, out, "--- Concept 2 ---")
}

func TestDescribePriorities_DefaultsToOne(t *testing.T) {
	g := describeFixture()
	other := &models.ConceptGraph{ConceptID: "concept-b", Name: "Eleatic Monism"}

	out := DescribePriorities([]*models.ConceptGraph{g, other}, map[string]float64{"concept-a": 0.6})

	assert.Contains(t, out, "- Process Philosophy: priority 0.6")
	assert.Contains(t, out, "- Eleatic Monism: priority 1")
}
