package models

import (
	"fmt"
	"strings"
)

// Direction describes how a connection relates its two categories.
type Direction string

const (
	DirectionDirected      Direction = "directed"
	DirectionBidirectional Direction = "bidirectional"
	DirectionUndirected    Direction = "undirected"
)

// Attribute is a bounded numeric annotation on a category or connection.
// Value must stay inside [0,1]; out-of-range values are rejected up front,
// never clamped.
type Attribute struct {
	Type          string  `json:"type"`
	Value         float64 `json:"value"`
	Justification string  `json:"justification,omitempty"`
}

// Validate checks the attribute value domain.
func (a Attribute) Validate() error {
	if a.Value < 0 || a.Value > 1 {
		return fmt.Errorf("attribute %q: value %g outside [0,1]", a.Type, a.Value)
	}
	return nil
}

// Category is a node in a concept graph.
type Category struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Definition string      `json:"definition"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Connection is a typed edge between two categories of the same graph.
type Connection struct {
	ID               string      `json:"id"`
	SourceCategoryID string      `json:"source_category_id"`
	TargetCategoryID string      `json:"target_category_id"`
	Type             string      `json:"type"`
	Direction        Direction   `json:"direction"`
	Description      string      `json:"description,omitempty"`
	Attributes       []Attribute `json:"attributes,omitempty"`
}

// ConceptGraph is the read-only graph input handed to the core by the
// persistence layer.
type ConceptGraph struct {
	ConceptID   string       `json:"concept_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Categories  []Category   `json:"categories"`
	Connections []Connection `json:"connections"`
}

// CategoryByID returns the category with the given id, if present.
func (g *ConceptGraph) CategoryByID(id string) (Category, bool) {
	for _, c := range g.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByName resolves a category by exact case-insensitive name match.
func (g *ConceptGraph) CategoryByName(name string) (Category, bool) {
	for _, c := range g.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// Validate checks structural integrity: every connection endpoint must
// reference a category present in the same graph, and every attribute
// value must be inside [0,1].
func (g *ConceptGraph) Validate() error {
	ids := make(map[string]struct{}, len(g.Categories))
	for _, c := range g.Categories {
		ids[c.ID] = struct{}{}
		for _, a := range c.Attributes {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("category %q: %w", c.Name, err)
			}
		}
	}
	for _, conn := range g.Connections {
		if _, ok := ids[conn.SourceCategoryID]; !ok {
			return fmt.Errorf("connection %s: unknown source category %q", conn.ID, conn.SourceCategoryID)
		}
		if _, ok := ids[conn.TargetCategoryID]; !ok {
			return fmt.Errorf("connection %s: unknown target category %q", conn.ID, conn.TargetCategoryID)
		}
		for _, a := range conn.Attributes {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("connection %s: %w", conn.ID, err)
			}
		}
	}
	return nil
}
