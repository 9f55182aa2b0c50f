package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCritical_FullReply(t *testing.T) {
	text := `## Internal consistency
Score: 0.8 / 1
The synthesized graph holds together with one residual tension.
Issues:
- Unity is both ground and result

## Philosophical novelty
Оценка: 0,75/1
Genuinely new mediating category.
Novel aspects:
- Processual reading of unity

## Preservation of value
Score: 0.9 / 1
Most source commitments survive.
Preserved:
- Primacy of process
Lost:
- Strict substance ontology

## Contradiction resolution
Score: 0.6 / 1
The central conflict is reframed rather than dissolved.
Resolved:
- Being versus Becoming
Remaining:
- Status of individual entities

## Potential issues

### Regress of grounding
The mediating category may itself need a ground.
Severity: high
Potential solution: Treat grounding as internal self-relation.

### Terminological drift
Severity: minor
`
	result := Critical(text)

	assert.InDelta(t, 0.8, result.InternalConsistency.Score, 1e-9)
	assert.Equal(t, "The synthesized graph holds together with one residual tension.", result.InternalConsistency.Analysis)
	assert.Equal(t, []string{"Unity is both ground and result"}, result.InternalConsistency.Issues)

	assert.InDelta(t, 0.75, result.PhilosophicalNovelty.Score, 1e-9)
	assert.Equal(t, []string{"Processual reading of unity"}, result.PhilosophicalNovelty.NovelAspects)

	assert.InDelta(t, 0.9, result.PreservationOfValue.Score, 1e-9)
	assert.Equal(t, []string{"Primacy of process"}, result.PreservationOfValue.Preserved)
	assert.Equal(t, []string{"Strict substance ontology"}, result.PreservationOfValue.Lost)

	assert.InDelta(t, 0.6, result.ContradictionResolution.Score, 1e-9)
	assert.Equal(t, []string{"Being versus Becoming"}, result.ContradictionResolution.Resolved)
	assert.Equal(t, []string{"Status of individual entities"}, result.ContradictionResolution.Remaining)

	require.Len(t, result.PotentialIssues, 2)
	issue := result.PotentialIssues[0]
	assert.Equal(t, "high", string(issue.Severity))
	assert.Equal(t, "Regress of grounding: The mediating category may itself need a ground.", issue.Issue)
	assert.Equal(t, "Treat grounding as internal self-relation.", issue.PotentialSolution)

	assert.Equal(t, "low", string(result.PotentialIssues[1].Severity))
	assert.Equal(t, "Terminological drift", result.PotentialIssues[1].Issue)
}

func TestCritical_ScoreOutOfRange(t *testing.T) {
	text := `## Internal consistency
Score: 8 / 1
Analysis text.
`
	result := Critical(text)
	assert.Equal(t, 0.0, result.InternalConsistency.Score)
	assert.Equal(t, "Analysis text.", result.InternalConsistency.Analysis)
}

func TestCritical_UnstructuredFallback(t *testing.T) {
	text := "An essay with none of the requested sections."
	result := Critical(text)

	assert.Equal(t, text, result.InternalConsistency.Analysis)
	assert.Equal(t, 0.0, result.InternalConsistency.Score)
	assert.NotNil(t, result.PotentialIssues)
	assert.Empty(t, result.PotentialIssues)
}
