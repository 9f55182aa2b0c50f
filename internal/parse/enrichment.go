package parse

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

var (
	hExtendedDescription = heading{"extended description", "расширенное описание"}
	hAlternatives        = heading{"alternative interpretations", "альтернативные интерпретации", "альтернативные трактовки"}
	hHistoricalAnalogs   = heading{"historical analogs", "historical analogues", "исторические аналоги"}
	hRelatedConcepts     = heading{"related concepts", "связанные концепции", "смежные концепции"}

	enrichmentHeadings = []heading{hExtendedDescription, hAlternatives, hHistoricalAnalogs, hRelatedConcepts}
)

// Enrichment extracts an EnrichmentResult. A fenced JSON block is tried
// first (models occasionally answer in JSON despite the prompt); otherwise
// named markdown sections are sliced out by heading. When the expected
// first heading is absent, the whole reply becomes the extended
// description.
func Enrichment(text string) models.EnrichmentResult {
	if result, ok := enrichmentFromJSON(text); ok {
		return result
	}

	result := models.EnrichmentResult{
		AlternativeInterpretations: []string{},
		HistoricalAnalogs:          []string{},
		RelatedConcepts:            []string{},
	}

	extended := section(text, hExtendedDescription, enrichmentHeadings)
	if extended == "" {
		result.ExtendedDescription = strings.TrimSpace(text)
		return result
	}

	result.ExtendedDescription = extended
	result.AlternativeInterpretations = append(result.AlternativeInterpretations,
		bullets(section(text, hAlternatives, enrichmentHeadings))...)
	result.HistoricalAnalogs = append(result.HistoricalAnalogs,
		bullets(section(text, hHistoricalAnalogs, enrichmentHeadings))...)
	result.RelatedConcepts = append(result.RelatedConcepts,
		bullets(section(text, hRelatedConcepts, enrichmentHeadings))...)
	return result
}

// enrichmentFromJSON attempts the fenced-code-block JSON path, repairing
// the block first since generative output is frequently almost-JSON.
func enrichmentFromJSON(text string) (models.EnrichmentResult, bool) {
	block := fencedBlock(text)
	if block == "" {
		return models.EnrichmentResult{}, false
	}
	repaired, err := jsonrepair.JSONRepair(block)
	if err != nil {
		return models.EnrichmentResult{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return models.EnrichmentResult{}, false
	}

	result := models.EnrichmentResult{
		ExtendedDescription:        jsonString(raw, "extended_description", "extendedDescription"),
		AlternativeInterpretations: jsonStrings(raw, "alternative_interpretations", "alternativeInterpretations"),
		HistoricalAnalogs:          jsonStrings(raw, "historical_analogs", "historicalAnalogs"),
		RelatedConcepts:            jsonStrings(raw, "related_concepts", "relatedConcepts"),
	}
	if result.ExtendedDescription == "" {
		return models.EnrichmentResult{}, false
	}
	return result, true
}

// fencedBlock returns the contents of the first ``` fence, or "".
func fencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start == -1 {
		return ""
	}
	rest := text[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		// Drop the info string ("json", "JSON", ...).
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

func jsonString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func jsonStrings(raw map[string]any, keys ...string) []string {
	out := []string{}
	for _, k := range keys {
		items, ok := raw[k].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		break
	}
	return out
}
