package prompts

import (
	"fmt"
	"strings"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// DescribeGraph renders a concept graph as structured prompt text. When
// includeWeights is false attribute values are omitted entirely rather than
// zeroed, so the model is never cued to reason about unsupplied weights.
func DescribeGraph(g *models.ConceptGraph, includeWeights bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Concept: %s\n", g.Name))
	if g.Description != "" {
		sb.WriteString(g.Description + "\n")
	}

	sb.WriteString("\nCategories:\n")
	for _, c := range g.Categories {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", c.Name, c.Definition))
		if includeWeights {
			writeAttributes(&sb, c.Attributes)
		}
	}

	if len(g.Connections) > 0 {
		sb.WriteString("\nConnections:\n")
		for _, conn := range g.Connections {
			source, _ := g.CategoryByID(conn.SourceCategoryID)
			target, _ := g.CategoryByID(conn.TargetCategoryID)
			sb.WriteString(fmt.Sprintf("- %s %s %s (%s)", source.Name, arrowFor(conn.Direction), target.Name, conn.Type))
			if conn.Description != "" {
				sb.WriteString(": " + conn.Description)
			}
			sb.WriteString("\n")
			if includeWeights {
				writeAttributes(&sb, conn.Attributes)
			}
		}
	}

	return sb.String()
}

// DescribeGraphs renders several graphs separated by numbered headers, for
// the combined compatibility and synthesis prompts.
func DescribeGraphs(graphs []*models.ConceptGraph, includeWeights bool) string {
	var sb strings.Builder
	for i, g := range graphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("--- Concept %d ---\n", i+1))
		sb.WriteString(DescribeGraph(g, includeWeights))
	}
	return sb.String()
}

// DescribePriorities renders per-concept priority weights. Concepts absent
// from the weights map default to 1.
func DescribePriorities(graphs []*models.ConceptGraph, weights map[string]float64) string {
	var sb strings.Builder
	for _, g := range graphs {
		w := 1.0
		if v, ok := weights[g.ConceptID]; ok {
			w = v
		}
		sb.WriteString(fmt.Sprintf("- %s: priority %g\n", g.Name, w))
	}
	return sb.String()
}

func writeAttributes(sb *strings.Builder, attrs []models.Attribute) {
	for _, a := range attrs {
		sb.WriteString(fmt.Sprintf("  * %s: %.2f", a.Type, a.Value))
		if a.Justification != "" {
			sb.WriteString(" (" + a.Justification + ")")
		}
		sb.WriteString("\n")
	}
}

func arrowFor(d models.Direction) string {
	switch d {
	case models.DirectionBidirectional:
		return "<->"
	case models.DirectionUndirected:
		return "--"
	default:
		return "->"
	}
}
