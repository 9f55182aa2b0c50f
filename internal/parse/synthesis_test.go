package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

func TestSynthesis_FullDraft(t *testing.T) {
	text := `# Processual Monism

## Description
A synthesis grounding unity in ongoing differentiation.

## Categories

### Unity
The self-identical ground of all determination.
Origin: Being

### Multiplicity
The internally differentiated field of appearances.
Origin: transformed from Becoming

## Connections
- Unity -> Multiplicity (causal): grounds
  - Origin: Being -> Becoming
- Multiplicity <-> Unity (dialectical): mutual mediation
- Unity <- Multiplicity (expressive): articulates
`
	draft := Synthesis(text)

	assert.Equal(t, "Processual Monism", draft.Name)
	assert.Equal(t, "A synthesis grounding unity in ongoing differentiation.", draft.Description)

	require.Len(t, draft.Categories, 2)
	assert.Equal(t, "Unity", draft.Categories[0].Name)
	assert.Equal(t, "The self-identical ground of all determination.", draft.Categories[0].Definition)
	assert.Equal(t, "Being", draft.Categories[0].OriginNote)
	assert.Equal(t, "transformed from Becoming", draft.Categories[1].OriginNote)

	require.Len(t, draft.Connections, 3)

	first := draft.Connections[0]
	assert.Equal(t, "Unity", first.SourceCategoryName)
	assert.Equal(t, "Multiplicity", first.TargetCategoryName)
	assert.Equal(t, "causal", first.Type)
	assert.Equal(t, models.DirectionDirected, first.Direction)
	assert.Equal(t, "grounds", first.Description)
	assert.Equal(t, "Being -> Becoming", first.OriginNote)

	assert.Equal(t, models.DirectionBidirectional, draft.Connections[1].Direction)

	// A reversed arrow stays directed with the endpoints as written.
	reversed := draft.Connections[2]
	assert.Equal(t, models.DirectionDirected, reversed.Direction)
	assert.Equal(t, "Unity", reversed.SourceCategoryName)
	assert.Equal(t, "Multiplicity", reversed.TargetCategoryName)
}

func TestSynthesis_TitleWithoutMarkdown(t *testing.T) {
	text := `Processual Monism

## Description
Short description.
`
	draft := Synthesis(text)
	assert.Equal(t, "Processual Monism", draft.Name)
	assert.Equal(t, "Short description.", draft.Description)
}

func TestSynthesis_UnstructuredFallback(t *testing.T) {
	text := "## Оглавление\nничего полезного"
	draft := Synthesis(text)

	assert.Equal(t, "", draft.Name)
	assert.Equal(t, text, draft.Description)
	assert.NotNil(t, draft.Categories)
	assert.Empty(t, draft.Categories)
	assert.NotNil(t, draft.Connections)
	assert.Empty(t, draft.Connections)
}
