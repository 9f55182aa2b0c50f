package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Ranatar/philosophical-concepts-service/internal/synthesis"
)

// CompatCommand returns the compatibility analysis command.
func CompatCommand() *cli.Command {
	return &cli.Command{
		Name:      "compat",
		Usage:     "Analyze compatibility of two or more concept graphs",
		ArgsUsage: "GRAPH.json GRAPH.json [GRAPH.json...]",
		Action:    runCompat,
	}
}

func runCompat(c *cli.Context) error {
	graphs, err := loadGraphs(c.Args().Slice())
	if err != nil {
		return err
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	orch, err := a.orchestrator()
	if err != nil {
		return err
	}

	analysis, err := orch.AnalyzeCompatibility(c.Context, c.String("user"), graphs)
	if err != nil {
		return err
	}
	return printJSON(analysis)
}

// SynthesizeCommand returns the synthesis command.
func SynthesizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "synthesize",
		Usage:     "Merge two or more concept graphs into a new concept",
		ArgsUsage: "GRAPH.json GRAPH.json [GRAPH.json...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "Synthesis method",
				Value:   "dialectical",
			},
			&cli.StringSliceFlag{
				Name:  "priority",
				Usage: "Per-concept priority as NAME=WEIGHT, repeatable",
			},
			&cli.BoolFlag{
				Name:  "weights",
				Usage: "Include attribute weights in the prompt",
			},
		},
		Action: runSynthesize,
	}
}

func runSynthesize(c *cli.Context) error {
	graphs, err := loadGraphs(c.Args().Slice())
	if err != nil {
		return err
	}

	weights, err := parsePriorities(c.StringSlice("priority"))
	if err != nil {
		return err
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	orch, err := a.orchestrator()
	if err != nil {
		return err
	}

	outcome, err := orch.Synthesize(c.Context, c.String("user"), graphs, synthesis.Options{
		Method:     c.String("method"),
		Weights:    weights,
		UseWeights: c.Bool("weights"),
	})
	if err != nil {
		return err
	}
	return printJSON(outcome)
}

// CritiqueCommand returns the critical analysis command for a synthesized
// concept against its sources.
func CritiqueCommand() *cli.Command {
	return &cli.Command{
		Name:      "critique",
		Usage:     "Critically analyze a synthesized concept against its sources",
		ArgsUsage: "RESULT.json SOURCE.json [SOURCE.json...]",
		Action:    runCritique,
	}
}

func runCritique(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("missing required arguments: result graph and at least one source graph")
	}

	result, err := loadGraph(c.Args().Get(0))
	if err != nil {
		return err
	}
	sources, err := loadGraphs(c.Args().Slice()[1:])
	if err != nil {
		return err
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	orch, err := a.orchestrator()
	if err != nil {
		return err
	}

	analysis, err := orch.CriticallyAnalyze(c.Context, c.String("user"), result, sources)
	if err != nil {
		return err
	}
	return printJSON(analysis)
}

func parsePriorities(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	weights := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid priority %q, want NAME=WEIGHT", pair)
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid priority weight %q: %w", value, err)
		}
		weights[strings.TrimSpace(name)] = w
	}
	return weights, nil
}
