package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

func TestCompatibility_FullReply(t *testing.T) {
	text := `## Fully compatible elements

### Being
Both concepts treat Being as foundational.
Reason of compatibility: Identical role in both systems.

## Potentially compatible elements

### Becoming -> Being (causal)
Conditions of compatibility: Requires reinterpreting causality as grounding.

## Incompatible elements

### Substance
Reason of incompatibility: One system rejects substance ontology outright.

## Synthesis strategies

### Dialectical synthesis
Description: Treat the tension as a productive contradiction.
Benefits:
- Preserves both source intuitions
- Generates a new mediating category
Limitations: Demands a process reading of Substance
Recommended: да

### Mechanical union
Description: Keep both category sets side by side.
Recommended: no
`
	result := Compatibility(text)

	require.Len(t, result.FullyCompatible, 1)
	el := result.FullyCompatible[0]
	assert.Equal(t, models.ElementCategory, el.Kind)
	assert.Equal(t, "Being", el.Name)
	assert.Equal(t, "Both concepts treat Being as foundational.", el.Description)
	assert.Equal(t, "Identical role in both systems.", el.Explanation)

	require.Len(t, result.PotentiallyCompatible, 1)
	assert.Equal(t, models.ElementConnection, result.PotentiallyCompatible[0].Kind)
	assert.Equal(t, "Requires reinterpreting causality as grounding.", result.PotentiallyCompatible[0].Explanation)

	require.Len(t, result.Incompatible, 1)
	assert.Equal(t, "One system rejects substance ontology outright.", result.Incompatible[0].Explanation)

	require.Len(t, result.Strategies, 2)
	s := result.Strategies[0]
	assert.Equal(t, "Dialectical synthesis", s.Name)
	assert.Equal(t, "Treat the tension as a productive contradiction.", s.Description)
	assert.Equal(t, []string{"Preserves both source intuitions", "Generates a new mediating category"}, s.Benefits)
	assert.Equal(t, []string{"Demands a process reading of Substance"}, s.Limitations)
	assert.True(t, s.Recommended)
	assert.False(t, result.Strategies[1].Recommended)
}

func TestCompatibility_ExplanationFallback(t *testing.T) {
	text := `## Incompatible elements

### Время
Категории времени определены несовместимо.
`
	result := Compatibility(text)

	require.Len(t, result.Incompatible, 1)
	assert.Equal(t, "Категории времени определены несовместимо.", result.Incompatible[0].Explanation)
	assert.Empty(t, result.Incompatible[0].Description)
}

func TestCompatibility_Unstructured(t *testing.T) {
	result := Compatibility("freeform essay")

	assert.NotNil(t, result.FullyCompatible)
	assert.Empty(t, result.FullyCompatible)
	assert.NotNil(t, result.Strategies)
	assert.Empty(t, result.Strategies)
}
