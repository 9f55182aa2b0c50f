package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichment_MarkdownSections(t *testing.T) {
	text := `## Extended description
Being is the most general determination of what is.
It was the starting point of Hegel's logic.

## Alternative interpretations
- Being as pure presence
- Being as the horizon of intelligibility

## Historical analogs
- Parmenides' One

## Related concepts
- Ontology
- Existence
`
	result := Enrichment(text)

	assert.Equal(t, "Being is the most general determination of what is.\nIt was the starting point of Hegel's logic.", result.ExtendedDescription)
	assert.Equal(t, []string{"Being as pure presence", "Being as the horizon of intelligibility"}, result.AlternativeInterpretations)
	assert.Equal(t, []string{"Parmenides' One"}, result.HistoricalAnalogs)
	assert.Equal(t, []string{"Ontology", "Existence"}, result.RelatedConcepts)
}

func TestEnrichment_FencedJSON(t *testing.T) {
	text := "Here is the enrichment:\n```json\n{\n  \"extended_description\": \"A richer reading of the category.\",\n  \"alternative_interpretations\": [\"reading one\", \"reading two\"],\n  \"historical_analogs\": [],\n  \"related_concepts\": [\"Essence\"],\n}\n```\n"
	result := Enrichment(text)

	assert.Equal(t, "A richer reading of the category.", result.ExtendedDescription)
	assert.Equal(t, []string{"reading one", "reading two"}, result.AlternativeInterpretations)
	assert.Empty(t, result.HistoricalAnalogs)
	assert.Equal(t, []string{"Essence"}, result.RelatedConcepts)
}

func TestEnrichment_RussianHeadings(t *testing.T) {
	text := `## Расширенное описание
Категория укоренена в классической метафизике.

## Альтернативные интерпретации
- Феноменологическая трактовка
`
	result := Enrichment(text)

	assert.Equal(t, "Категория укоренена в классической метафизике.", result.ExtendedDescription)
	require.Len(t, result.AlternativeInterpretations, 1)
}

func TestEnrichment_NoHeadingsFallback(t *testing.T) {
	text := "Just a paragraph of context with no structure whatsoever."
	result := Enrichment(text)

	assert.Equal(t, text, result.ExtendedDescription)
	assert.NotNil(t, result.AlternativeInterpretations)
	assert.Empty(t, result.AlternativeInterpretations)
}
