package models

// ElementKind distinguishes categories from connections in a
// compatibility analysis.
type ElementKind string

const (
	ElementCategory   ElementKind = "category"
	ElementConnection ElementKind = "connection"
)

// CompatibilityElement is one graph element classified by the
// compatibility analysis.
type CompatibilityElement struct {
	Kind        ElementKind `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
}

// SynthesisStrategy is one proposed approach for combining the source
// concepts.
type SynthesisStrategy struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits,omitempty"`
	Limitations []string `json:"limitations,omitempty"`
	Recommended bool     `json:"recommended"`
}

// CompatibilityAnalysis groups source-graph elements by how well they can
// coexist in a synthesized concept.
type CompatibilityAnalysis struct {
	FullyCompatible       []CompatibilityElement `json:"fully_compatible"`
	PotentiallyCompatible []CompatibilityElement `json:"potentially_compatible"`
	Incompatible          []CompatibilityElement `json:"incompatible"`
	Strategies            []SynthesisStrategy    `json:"strategies"`
}

// CategoryDraft is a textual category pre-image inside a synthesis draft.
type CategoryDraft struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
	OriginNote string `json:"origin_note,omitempty"`
}

// ConnectionDraft references categories by name; names are resolved to
// temporary IDs during materialization. Unresolved endpoints stay empty.
type ConnectionDraft struct {
	SourceCategoryName string    `json:"source_category_name"`
	TargetCategoryName string    `json:"target_category_name"`
	Type               string    `json:"type"`
	Direction          Direction `json:"direction"`
	Description        string    `json:"description,omitempty"`
	OriginNote         string    `json:"origin_note,omitempty"`
}

// SynthesisDraft is the textual pre-image of a new graph extracted from the
// model response, before name resolution.
type SynthesisDraft struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Categories  []CategoryDraft   `json:"categories"`
	Connections []ConnectionDraft `json:"connections"`
}

// ElementOrigin links one synthesized entity back to its source.
type ElementOrigin struct {
	OriginConceptID  string `json:"origin_concept_id,omitempty"`
	OriginCategoryID string `json:"origin_category_id,omitempty"`
	Transformation   string `json:"transformation,omitempty"`
}

// OriginMapping records provenance for every materialized entity, keyed by
// the temporary entity ID.
type OriginMapping struct {
	Categories  map[string]ElementOrigin `json:"categories"`
	Connections map[string]ElementOrigin `json:"connections"`
}

// ConsistencyDimension grades internal coherence of the synthesized graph.
// Scores are in [0,1].
type ConsistencyDimension struct {
	Score    float64  `json:"score"`
	Analysis string   `json:"analysis"`
	Issues   []string `json:"issues,omitempty"`
}

// NoveltyDimension grades what the synthesis adds beyond its sources.
type NoveltyDimension struct {
	Score        float64  `json:"score"`
	Analysis     string   `json:"analysis"`
	NovelAspects []string `json:"novel_aspects,omitempty"`
}

// PreservationDimension grades how much source value survived.
type PreservationDimension struct {
	Score     float64  `json:"score"`
	Analysis  string   `json:"analysis"`
	Preserved []string `json:"preserved,omitempty"`
	Lost      []string `json:"lost,omitempty"`
}

// ResolutionDimension grades how source contradictions were handled.
type ResolutionDimension struct {
	Score     float64  `json:"score"`
	Analysis  string   `json:"analysis"`
	Resolved  []string `json:"resolved,omitempty"`
	Remaining []string `json:"remaining,omitempty"`
}

// PotentialIssue is one problem flagged by the critical analysis.
type PotentialIssue struct {
	Severity          Severity `json:"severity"`
	Issue             string   `json:"issue"`
	PotentialSolution string   `json:"potential_solution,omitempty"`
}

// CriticalAnalysis grades a synthesized concept along four dimensions.
type CriticalAnalysis struct {
	InternalConsistency     ConsistencyDimension  `json:"internal_consistency"`
	PhilosophicalNovelty    NoveltyDimension      `json:"philosophical_novelty"`
	PreservationOfValue     PreservationDimension `json:"preservation_of_value"`
	ContradictionResolution ResolutionDimension   `json:"contradiction_resolution"`
	PotentialIssues         []PotentialIssue      `json:"potential_issues"`
}
