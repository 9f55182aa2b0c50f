package models

import "time"

// OperationKind is the closed set of model-backed use cases. Each kind has
// its own prompt template and response parser.
type OperationKind string

const (
	OpValidateConcept      OperationKind = "validate_concept"
	OpEnrichCategory       OperationKind = "enrich_category"
	OpEnrichConnection     OperationKind = "enrich_connection"
	OpGenerateTheses       OperationKind = "generate_theses"
	OpAnalyzeCompatibility OperationKind = "analyze_compatibility"
	OpSynthesize           OperationKind = "synthesize"
	OpCriticalAnalysis     OperationKind = "critical_analysis"
)

// OperationKinds lists every kind in declaration order.
func OperationKinds() []OperationKind {
	return []OperationKind{
		OpValidateConcept,
		OpEnrichCategory,
		OpEnrichConnection,
		OpGenerateTheses,
		OpAnalyzeCompatibility,
		OpSynthesize,
		OpCriticalAnalysis,
	}
}

// InteractionRecord is the append-only audit row written once per completed
// model call. Cache hits do not produce a record.
type InteractionRecord struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	ConceptID    *string       `json:"concept_id,omitempty"`
	Kind         OperationKind `json:"operation_kind"`
	PromptText   string        `json:"prompt_text"`
	ResponseText string        `json:"response_text"`
	TokensUsed   int           `json:"tokens_used"`
	CreatedAt    time.Time     `json:"created_at"`
	DurationMs   int64         `json:"duration_ms"`
}

// Severity grades an issue found by the model.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SuggestionKind classifies an improvement suggestion.
type SuggestionKind string

const (
	SuggestAddCategory      SuggestionKind = "add_category"
	SuggestAddConnection    SuggestionKind = "add_connection"
	SuggestModifyCategory   SuggestionKind = "modify_category"
	SuggestModifyConnection SuggestionKind = "modify_connection"
)

// Issue is one contradiction or missing element reported by validation.
type Issue struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Suggestion is one classified improvement proposal.
type Suggestion struct {
	Kind        SuggestionKind `json:"kind"`
	Description string         `json:"description"`
}

// ValidationResult is the structured outcome of the validation operation.
type ValidationResult struct {
	GeneralAnalysis        string       `json:"general_analysis"`
	Contradictions         []Issue      `json:"contradictions"`
	MissingElements        []Issue      `json:"missing_elements"`
	ImprovementSuggestions []Suggestion `json:"improvement_suggestions"`
}

// EnrichmentResult carries model-generated context for a category or
// connection.
type EnrichmentResult struct {
	ExtendedDescription        string   `json:"extended_description"`
	AlternativeInterpretations []string `json:"alternative_interpretations"`
	HistoricalAnalogs          []string `json:"historical_analogs"`
	RelatedConcepts            []string `json:"related_concepts"`
}

// ThesisOrigin records which graph entities a thesis was derived from.
type ThesisOrigin struct {
	CategoryIDs   []string `json:"category_ids"`
	ConnectionIDs []string `json:"connection_ids"`
}

// ThesisDraft is a generated thesis before persistence (persistence is
// external to this core).
type ThesisDraft struct {
	Text        string       `json:"text"`
	DerivedFrom ThesisOrigin `json:"derived_from"`
	Type        string       `json:"type"`
	Style       string       `json:"style"`
	UsedWeights bool         `json:"used_weights"`
}
