// Package cmd holds the CLI commands. Each command does its own wiring
// from configuration so one-shot invocations stay cheap.
package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"

	"github.com/Ranatar/philosophical-concepts-service/internal/ai"
	"github.com/Ranatar/philosophical-concepts-service/internal/cache"
	"github.com/Ranatar/philosophical-concepts-service/internal/concepts"
	"github.com/Ranatar/philosophical-concepts-service/internal/config"
	"github.com/Ranatar/philosophical-concepts-service/internal/interactions"
	"github.com/Ranatar/philosophical-concepts-service/internal/logging"
	"github.com/Ranatar/philosophical-concepts-service/internal/prompts"
	"github.com/Ranatar/philosophical-concepts-service/internal/synthesis"
	"github.com/Ranatar/philosophical-concepts-service/internal/templates"
	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// app is the wired runtime behind every command.
type app struct {
	cfg     *config.Config
	shared  cache.Cache
	store   *templates.Store
	builder *prompts.Builder
	gateway *ai.Gateway
	db      *sql.DB
}

func newApp(c *cli.Context) (*app, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if c.Bool("verbose") {
		level = "debug"
	}
	logging.Setup(level, cfg.Log.Console)

	templatesTTL, err := cfg.TemplatesTTL()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var shared cache.Cache
	if cfg.Cache.Enabled {
		shared, err = cache.NewRistretto()
		if err != nil {
			return nil, fmt.Errorf("failed to create cache: %w", err)
		}
	}

	store := templates.NewStore(cfg.Templates.Dir, shared, templatesTTL)
	if err := store.EnsureDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed templates: %w", err)
	}

	a := &app{cfg: cfg, shared: shared, store: store, builder: prompts.NewBuilder(store)}

	if cfg.Database.URL != "" {
		a.db, err = sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	}

	return a, nil
}

// ensureGateway builds the model gateway on first use, so template
// management commands never need an API key.
func (a *app) ensureGateway() error {
	if a.gateway != nil {
		return nil
	}
	if err := config.Validate(a.cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	timeout, err := a.cfg.RequestTimeout()
	if err != nil {
		return err
	}
	cacheTTL, err := a.cfg.CacheTTL()
	if err != nil {
		return err
	}

	var recorder ai.Recorder
	if a.db != nil {
		recorder = interactions.NewStore(a.db)
	} else {
		recorder = interactions.NewMemoryRecorder()
	}

	client := ai.NewAnthropicClient(a.cfg.Model.APIKey, a.cfg.Model.Name, timeout)
	a.gateway = ai.NewGateway(client, a.shared, recorder, cacheTTL)
	return nil
}

func (a *app) defaults() concepts.Defaults {
	return concepts.Defaults{
		MaxTokens:   a.cfg.Model.MaxTokens,
		Temperature: a.cfg.Model.Temperature,
		UseCache:    a.cfg.Cache.Enabled,
		System:      a.cfg.Model.SystemPrompt,
	}
}

func (a *app) conceptService() (*concepts.Service, error) {
	if err := a.ensureGateway(); err != nil {
		return nil, err
	}
	return concepts.NewService(fileGraphs{}, a.builder, a.gateway, a.defaults()), nil
}

func (a *app) orchestrator() (*synthesis.Orchestrator, error) {
	if err := a.ensureGateway(); err != nil {
		return nil, err
	}
	d := a.defaults()
	return synthesis.NewOrchestrator(a.builder, a.gateway, synthesis.Defaults{
		MaxTokens:   d.MaxTokens,
		Temperature: d.Temperature,
		UseCache:    d.UseCache,
		System:      d.System,
	}), nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

// fileGraphs resolves concept ids as paths to JSON graph files. The CLI
// has no concept database; persistence lives behind the CRUD layer.
type fileGraphs struct{}

func (fileGraphs) ConceptGraph(_ context.Context, conceptID string) (*models.ConceptGraph, error) {
	return loadGraph(conceptID)
}

func loadGraph(path string) (*models.ConceptGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var graph models.ConceptGraph
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &graph, nil
}

func loadGraphs(paths []string) ([]*models.ConceptGraph, error) {
	graphs := make([]*models.ConceptGraph, 0, len(paths))
	for _, path := range paths {
		g, err := loadGraph(path)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	return graphs, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
