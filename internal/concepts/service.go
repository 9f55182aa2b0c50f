// Package concepts is the operation facade consumed by the CRUD layer:
// validation, enrichment and thesis generation over a single concept graph.
package concepts

import (
	"context"
	"fmt"

	"github.com/Ranatar/philosophical-concepts-service/internal/ai"
	"github.com/Ranatar/philosophical-concepts-service/internal/parse"
	"github.com/Ranatar/philosophical-concepts-service/internal/prompts"
	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// GraphProvider hands the service concept graphs by id. Persistence is
// external to this core; the CRUD layer implements this.
type GraphProvider interface {
	ConceptGraph(ctx context.Context, conceptID string) (*models.ConceptGraph, error)
}

// Defaults carries the model-call parameters shared by all operations.
type Defaults struct {
	MaxTokens   int
	Temperature float64
	UseCache    bool
	System      string
}

// ThesisOptions steers thesis generation.
type ThesisOptions struct {
	Count      int
	Type       string
	Style      string
	UseWeights bool
}

// Service wires graph access, prompt building, the model gateway and the
// response parsers for the per-concept operations. It holds no mutable state.
type Service struct {
	graphs   GraphProvider
	builder  *prompts.Builder
	gateway  *ai.Gateway
	defaults Defaults
}

func NewService(graphs GraphProvider, builder *prompts.Builder, gateway *ai.Gateway, defaults Defaults) *Service {
	return &Service{graphs: graphs, builder: builder, gateway: gateway, defaults: defaults}
}

// ValidateGraph asks the model for contradictions, gaps and improvement
// suggestions. The graph is structurally validated first; out-of-range
// attribute values are rejected, never clamped.
func (s *Service) ValidateGraph(ctx context.Context, userID, conceptID string) (models.ValidationResult, error) {
	graph, err := s.load(ctx, conceptID)
	if err != nil {
		return models.ValidationResult{}, err
	}

	prompt, err := s.builder.Render(string(models.OpValidateConcept), map[string]any{
		"concept_name":        graph.Name,
		"concept_description": graph.Description,
		"graph_description":   prompts.DescribeGraph(graph, true),
	})
	if err != nil {
		return models.ValidationResult{}, err
	}

	result, err := s.complete(ctx, userID, graph, models.OpValidateConcept, prompt)
	if err != nil {
		return models.ValidationResult{}, err
	}
	return parse.Validation(result.Text), nil
}

// EnrichCategory generates extended context for one category of the graph.
func (s *Service) EnrichCategory(ctx context.Context, userID, conceptID, categoryID string) (models.EnrichmentResult, error) {
	graph, err := s.load(ctx, conceptID)
	if err != nil {
		return models.EnrichmentResult{}, err
	}
	category, ok := graph.CategoryByID(categoryID)
	if !ok {
		return models.EnrichmentResult{}, fmt.Errorf("concepts: category %q not in concept %q", categoryID, conceptID)
	}

	prompt, err := s.builder.Render(string(models.OpEnrichCategory), map[string]any{
		"concept_name":        graph.Name,
		"category_name":       category.Name,
		"category_definition": category.Definition,
		"graph_description":   prompts.DescribeGraph(graph, false),
	})
	if err != nil {
		return models.EnrichmentResult{}, err
	}

	result, err := s.complete(ctx, userID, graph, models.OpEnrichCategory, prompt)
	if err != nil {
		return models.EnrichmentResult{}, err
	}
	return parse.Enrichment(result.Text), nil
}

// EnrichConnection generates extended context for one connection.
func (s *Service) EnrichConnection(ctx context.Context, userID, conceptID, connectionID string) (models.EnrichmentResult, error) {
	graph, err := s.load(ctx, conceptID)
	if err != nil {
		return models.EnrichmentResult{}, err
	}

	var connection models.Connection
	found := false
	for _, c := range graph.Connections {
		if c.ID == connectionID {
			connection = c
			found = true
			break
		}
	}
	if !found {
		return models.EnrichmentResult{}, fmt.Errorf("concepts: connection %q not in concept %q", connectionID, conceptID)
	}

	source, _ := graph.CategoryByID(connection.SourceCategoryID)
	target, _ := graph.CategoryByID(connection.TargetCategoryID)

	prompt, err := s.builder.Render(string(models.OpEnrichConnection), map[string]any{
		"concept_name":           graph.Name,
		"source_name":            source.Name,
		"target_name":            target.Name,
		"connection_type":        connection.Type,
		"connection_description": connection.Description,
	})
	if err != nil {
		return models.EnrichmentResult{}, err
	}

	result, err := s.complete(ctx, userID, graph, models.OpEnrichConnection, prompt)
	if err != nil {
		return models.EnrichmentResult{}, err
	}
	return parse.Enrichment(result.Text), nil
}

// GenerateTheses derives theses from the graph. Attribute values enter the
// prompt only when opts.UseWeights is set; otherwise they are omitted
// entirely so the model is never cued about unsupplied weights.
func (s *Service) GenerateTheses(ctx context.Context, userID, conceptID string, opts ThesisOptions) ([]models.ThesisDraft, error) {
	graph, err := s.load(ctx, conceptID)
	if err != nil {
		return nil, err
	}
	if opts.Count <= 0 {
		opts.Count = 5
	}
	if opts.Type == "" {
		opts.Type = "ontological"
	}
	if opts.Style == "" {
		opts.Style = "academic"
	}

	prompt, err := s.builder.Render(string(models.OpGenerateTheses), map[string]any{
		"concept_name":      graph.Name,
		"graph_description": prompts.DescribeGraph(graph, opts.UseWeights),
		"count":             fmt.Sprintf("%d", opts.Count),
		"thesis_type":       opts.Type,
		"style":             opts.Style,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.complete(ctx, userID, graph, models.OpGenerateTheses, prompt)
	if err != nil {
		return nil, err
	}
	return parse.Theses(result.Text, opts.Type, opts.Style, opts.UseWeights, parse.GraphCategoryResolver(graph)), nil
}

func (s *Service) load(ctx context.Context, conceptID string) (*models.ConceptGraph, error) {
	graph, err := s.graphs.ConceptGraph(ctx, conceptID)
	if err != nil {
		return nil, fmt.Errorf("concepts: load concept %q: %w", conceptID, err)
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	return graph, nil
}

func (s *Service) complete(ctx context.Context, userID string, graph *models.ConceptGraph, kind models.OperationKind, prompt string) (ai.CompletionResult, error) {
	var conceptID *string
	if graph.ConceptID != "" {
		id := graph.ConceptID
		conceptID = &id
	}
	return s.gateway.Complete(ctx, ai.CompletionRequest{
		UserID:      userID,
		ConceptID:   conceptID,
		Kind:        kind,
		Prompt:      prompt,
		MaxTokens:   s.defaults.MaxTokens,
		Temperature: s.defaults.Temperature,
		UseCache:    s.defaults.UseCache,
		System:      s.defaults.System,
	})
}
