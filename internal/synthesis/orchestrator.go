// Package synthesis implements the multi-step workflow that merges several
// concept graphs into one new graph with origin provenance.
package synthesis

import (
	"context"
	"errors"

	"github.com/Ranatar/philosophical-concepts-service/internal/ai"
	"github.com/Ranatar/philosophical-concepts-service/internal/parse"
	"github.com/Ranatar/philosophical-concepts-service/internal/prompts"
	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// ErrTooFewConcepts is returned when fewer than two source concepts are
// supplied.
var ErrTooFewConcepts = errors.New("synthesis: at least two concepts are required")

// Defaults carries the model-call parameters shared by all operations.
type Defaults struct {
	MaxTokens   int
	Temperature float64
	UseCache    bool
	System      string
}

// Options steers one synthesize call.
type Options struct {
	Method     string
	Weights    map[string]float64 // per-concept priorities, default 1
	UseWeights bool               // include attribute values in the prompt
}

// Outcome is the result of one synthesize call: the textual draft, the
// materialized graph with temporary IDs, and provenance for every entity.
type Outcome struct {
	Draft   models.SynthesisDraft `json:"draft"`
	Graph   models.ConceptGraph   `json:"graph"`
	Origins models.OriginMapping  `json:"origins"`
}

// Orchestrator drives compatibility analysis, synthesis and critical
// re-analysis. Each operation is independent and single-shot; a failed
// stage fails the whole operation, nothing is resumed.
type Orchestrator struct {
	builder  *prompts.Builder
	gateway  *ai.Gateway
	defaults Defaults
}

func NewOrchestrator(builder *prompts.Builder, gateway *ai.Gateway, defaults Defaults) *Orchestrator {
	return &Orchestrator{builder: builder, gateway: gateway, defaults: defaults}
}

// AnalyzeCompatibility builds one combined prompt embedding all input
// graphs and parses the reply into a CompatibilityAnalysis.
func (o *Orchestrator) AnalyzeCompatibility(ctx context.Context, userID string, graphs []*models.ConceptGraph) (models.CompatibilityAnalysis, error) {
	if len(graphs) < 2 {
		return models.CompatibilityAnalysis{}, ErrTooFewConcepts
	}

	prompt, err := o.builder.Render(string(models.OpAnalyzeCompatibility), map[string]any{
		"graphs_description": prompts.DescribeGraphs(graphs, false),
	})
	if err != nil {
		return models.CompatibilityAnalysis{}, err
	}

	result, err := o.complete(ctx, userID, nil, models.OpAnalyzeCompatibility, prompt)
	if err != nil {
		return models.CompatibilityAnalysis{}, err
	}
	return parse.Compatibility(result.Text), nil
}

// Synthesize requests a new concept from the model and materializes the
// extracted draft into a graph with origin provenance.
func (o *Orchestrator) Synthesize(ctx context.Context, userID string, graphs []*models.ConceptGraph, opts Options) (Outcome, error) {
	if len(graphs) < 2 {
		return Outcome{}, ErrTooFewConcepts
	}
	for _, g := range graphs {
		if err := g.Validate(); err != nil {
			return Outcome{}, err
		}
	}

	method := opts.Method
	if method == "" {
		method = "dialectical"
	}

	prompt, err := o.builder.Render(string(models.OpSynthesize), map[string]any{
		"graphs_description": prompts.DescribeGraphs(graphs, opts.UseWeights),
		"method":             method,
		"priorities":         prompts.DescribePriorities(graphs, opts.Weights),
	})
	if err != nil {
		return Outcome{}, err
	}

	result, err := o.complete(ctx, userID, nil, models.OpSynthesize, prompt)
	if err != nil {
		return Outcome{}, err
	}

	draft := parse.Synthesis(result.Text)
	graph, origins := Materialize(draft, graphs)
	return Outcome{Draft: draft, Graph: graph, Origins: origins}, nil
}

// CriticallyAnalyze grades a synthesized graph against its sources.
func (o *Orchestrator) CriticallyAnalyze(ctx context.Context, userID string, result *models.ConceptGraph, sources []*models.ConceptGraph) (models.CriticalAnalysis, error) {
	prompt, err := o.builder.Render(string(models.OpCriticalAnalysis), map[string]any{
		"result_description":  prompts.DescribeGraph(result, false),
		"sources_description": prompts.DescribeGraphs(sources, false),
	})
	if err != nil {
		return models.CriticalAnalysis{}, err
	}

	conceptID := result.ConceptID
	var conceptRef *string
	if conceptID != "" {
		conceptRef = &conceptID
	}

	completion, err := o.complete(ctx, userID, conceptRef, models.OpCriticalAnalysis, prompt)
	if err != nil {
		return models.CriticalAnalysis{}, err
	}
	return parse.Critical(completion.Text), nil
}

func (o *Orchestrator) complete(ctx context.Context, userID string, conceptID *string, kind models.OperationKind, prompt string) (ai.CompletionResult, error) {
	return o.gateway.Complete(ctx, ai.CompletionRequest{
		UserID:      userID,
		ConceptID:   conceptID,
		Kind:        kind,
		Prompt:      prompt,
		MaxTokens:   o.defaults.MaxTokens,
		Temperature: o.defaults.Temperature,
		UseCache:    o.defaults.UseCache,
		System:      o.defaults.System,
	})
}
