package parse

import (
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

var (
	hFullyCompatible       = heading{"fully compatible elements", "fully compatible", "полностью совместимые элементы", "полностью совместимые"}
	hPotentiallyCompatible = heading{"potentially compatible elements", "potentially compatible", "потенциально совместимые элементы", "потенциально совместимые"}
	hIncompatible          = heading{"incompatible elements", "incompatible", "несовместимые элементы", "несовместимые"}
	hStrategies            = heading{"synthesis strategies", "strategies", "стратегии синтеза", "стратегии"}

	compatibilityHeadings = []heading{hFullyCompatible, hPotentiallyCompatible, hIncompatible, hStrategies}

	lCompatReason   = label{"reason of compatibility", "причина совместимости"}
	lCompatConds    = label{"conditions of compatibility", "условия совместимости"}
	lIncompatReason = label{"reason of incompatibility", "причина несовместимости"}

	lStrategyDesc  = label{"description", "описание"}
	lBenefits      = label{"benefits", "преимущества"}
	lLimitations   = label{"limitations", "ограничения", "недостатки"}
	lRecommended   = label{"recommended", "рекомендуется", "рекомендовано"}
	strategyLabels = []label{lStrategyDesc, lBenefits, lLimitations, lRecommended}
)

// Compatibility extracts a CompatibilityAnalysis: three fixed sections of
// element sub-headings plus a strategies section. When a per-kind
// explanation label is absent, the whole sub-heading body is used as the
// explanation.
func Compatibility(text string) models.CompatibilityAnalysis {
	return models.CompatibilityAnalysis{
		FullyCompatible:       compatElements(text, hFullyCompatible, lCompatReason),
		PotentiallyCompatible: compatElements(text, hPotentiallyCompatible, lCompatConds),
		Incompatible:          compatElements(text, hIncompatible, lIncompatReason),
		Strategies:            strategies(text),
	}
}

func compatElements(text string, h heading, explanation label) []models.CompatibilityElement {
	out := []models.CompatibilityElement{}
	body := section(text, h, compatibilityHeadings)
	if body == "" {
		return out
	}
	for _, sub := range subSections(body) {
		name, subBody := sub[0], sub[1]
		el := models.CompatibilityElement{
			Kind: elementKind(name, subBody),
			Name: strings.TrimSpace(name),
		}
		if value, ok := labeledValue(subBody, explanation, []label{explanation}); ok {
			el.Explanation = value
			el.Description = descriptionBefore(subBody, []label{explanation})
		} else {
			el.Explanation = strings.TrimSpace(subBody)
		}
		out = append(out, el)
	}
	return out
}

// descriptionBefore returns the free text preceding the first of the given
// labels.
func descriptionBefore(body string, stop []label) string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if isLabelBoundary(line, stop) {
			break
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, " ")
}

// elementKind guesses category vs connection from markers in the name or
// body; connections are usually written as "A -> B" or flagged by a noun.
func elementKind(name, body string) models.ElementKind {
	lower := strings.ToLower(name + " " + body)
	if strings.Contains(name, "->") || strings.Contains(name, "<->") || containsAny(lower, connectionNouns) {
		return models.ElementConnection
	}
	return models.ElementCategory
}

func strategies(text string) []models.SynthesisStrategy {
	out := []models.SynthesisStrategy{}
	body := section(text, hStrategies, compatibilityHeadings)
	if body == "" {
		return out
	}
	for _, sub := range subSections(body) {
		name, subBody := sub[0], sub[1]
		s := models.SynthesisStrategy{
			Name:        strings.TrimSpace(name),
			Benefits:    listItems(subBody, lBenefits, strategyLabels),
			Limitations: listItems(subBody, lLimitations, strategyLabels),
		}
		if desc, ok := labeledValue(subBody, lStrategyDesc, strategyLabels); ok {
			s.Description = desc
		} else {
			s.Description = descriptionBefore(subBody, strategyLabels)
		}
		if rec, ok := labeledValue(subBody, lRecommended, strategyLabels); ok {
			s.Recommended = isAffirmative(rec)
		}
		out = append(out, s)
	}
	return out
}
