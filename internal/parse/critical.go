package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

var (
	hConsistency     = heading{"internal consistency", "внутренняя согласованность", "внутренняя непротиворечивость"}
	hNovelty         = heading{"philosophical novelty", "философская новизна"}
	hPreservation    = heading{"preservation of value", "сохранение ценности"}
	hResolution      = heading{"contradiction resolution", "разрешение противоречий"}
	hPotentialIssues = heading{"potential issues", "потенциальные проблемы"}

	criticalHeadings = []heading{hConsistency, hNovelty, hPreservation, hResolution, hPotentialIssues}

	lIssues       = label{"issues", "проблемы"}
	lNovelAspects = label{"novel aspects", "new aspects", "новые аспекты"}
	lPreserved    = label{"preserved", "сохранено", "сохранённое", "сохраненное"}
	lLost         = label{"lost", "утрачено", "потеряно"}
	lResolved     = label{"resolved", "разрешено", "разрешённые", "разрешенные"}
	lRemaining    = label{"remaining", "оставшиеся", "остались"}
	lSeverity     = label{"severity", "серьезность", "серьёзность"}
	lSolution     = label{"potential solution", "solution", "возможное решение", "решение"}

	dimensionLabels = []label{lIssues, lNovelAspects, lPreserved, lLost, lResolved, lRemaining}
	issueLabels     = []label{lSeverity, lSolution}

	// "Score: 0.8 / 1", "Оценка: 0,75/1"
	scoreRe = regexp.MustCompile(`(?i)(?:score|оценка)\s*:?\s*([0-9]+(?:[.,][0-9]+)?)\s*/\s*1`)
)

// Critical extracts a CriticalAnalysis: four fixed scored dimensions plus a
// potential-issues section. Missing structure degrades to zero scores and
// the raw text kept in the first dimension's analysis.
func Critical(text string) models.CriticalAnalysis {
	result := models.CriticalAnalysis{PotentialIssues: []models.PotentialIssue{}}

	consistency := section(text, hConsistency, criticalHeadings)
	novelty := section(text, hNovelty, criticalHeadings)
	preservation := section(text, hPreservation, criticalHeadings)
	resolution := section(text, hResolution, criticalHeadings)

	if consistency == "" && novelty == "" && preservation == "" && resolution == "" {
		result.InternalConsistency.Analysis = strings.TrimSpace(text)
		return result
	}

	result.InternalConsistency = models.ConsistencyDimension{
		Score:    dimensionScore(consistency),
		Analysis: dimensionAnalysis(consistency),
		Issues:   listItems(consistency, lIssues, dimensionLabels),
	}
	result.PhilosophicalNovelty = models.NoveltyDimension{
		Score:        dimensionScore(novelty),
		Analysis:     dimensionAnalysis(novelty),
		NovelAspects: listItems(novelty, lNovelAspects, dimensionLabels),
	}
	result.PreservationOfValue = models.PreservationDimension{
		Score:     dimensionScore(preservation),
		Analysis:  dimensionAnalysis(preservation),
		Preserved: listItems(preservation, lPreserved, dimensionLabels),
		Lost:      listItems(preservation, lLost, dimensionLabels),
	}
	result.ContradictionResolution = models.ResolutionDimension{
		Score:     dimensionScore(resolution),
		Analysis:  dimensionAnalysis(resolution),
		Resolved:  listItems(resolution, lResolved, dimensionLabels),
		Remaining: listItems(resolution, lRemaining, dimensionLabels),
	}
	result.PotentialIssues = potentialIssues(section(text, hPotentialIssues, criticalHeadings))
	return result
}

func dimensionScore(body string) float64 {
	m := scoreRe.FindStringSubmatch(body)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || v < 0 || v > 1 {
		return 0
	}
	return v
}

// dimensionAnalysis is the free text after the score line and before the
// first labeled sub-list.
func dimensionAnalysis(body string) string {
	if body == "" {
		return ""
	}
	if loc := scoreRe.FindStringIndex(body); loc != nil {
		body = body[loc[1]:]
	}
	return descriptionBefore(body, dimensionLabels)
}

func potentialIssues(body string) []models.PotentialIssue {
	out := []models.PotentialIssue{}
	if body == "" {
		return out
	}
	for _, sub := range subSections(body) {
		title, subBody := sub[0], sub[1]
		issue := models.PotentialIssue{Severity: models.SeverityMedium}

		// Labels and free text interleave here, so walk line by line:
		// the severity value is its own line, the solution runs to the
		// end, and everything unlabeled is the issue text.
		var textLines []string
		inSolution := false
		for _, line := range strings.Split(subBody, "\n") {
			if sev, ok := matchLabel(line, lSeverity); ok {
				issue.Severity = inferSeverity(sev)
				inSolution = false
				continue
			}
			if sol, ok := matchLabel(line, lSolution); ok {
				issue.PotentialSolution = sol
				inSolution = true
				continue
			}
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if inSolution {
				issue.PotentialSolution += " " + trimmed
				continue
			}
			textLines = append(textLines, trimmed)
		}

		issueText := strings.Join(textLines, " ")
		if issueText == "" {
			issueText = strings.TrimSpace(title)
		} else if title != "" {
			issueText = strings.TrimSpace(title) + ": " + issueText
		}
		issue.Issue = issueText
		out = append(out, issue)
	}
	return out
}
