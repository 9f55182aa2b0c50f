package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Ranatar/philosophical-concepts-service/internal/concepts"
)

// ValidateCommand returns the concept validation command.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a concept graph for contradictions and gaps",
		ArgsUsage: "GRAPH.json",
		Action:    runValidate,
	}
}

func runValidate(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: graph file")
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.conceptService()
	if err != nil {
		return err
	}

	result, err := svc.ValidateGraph(c.Context, c.String("user"), c.Args().Get(0))
	if err != nil {
		return err
	}
	return printJSON(result)
}

// EnrichCommand returns the enrichment command for categories and connections.
func EnrichCommand() *cli.Command {
	return &cli.Command{
		Name:  "enrich",
		Usage: "Generate extended context for a graph element",
		Subcommands: []*cli.Command{
			{
				Name:      "category",
				Usage:     "Enrich one category",
				ArgsUsage: "GRAPH.json CATEGORY_ID",
				Action:    runEnrichCategory,
			},
			{
				Name:      "connection",
				Usage:     "Enrich one connection",
				ArgsUsage: "GRAPH.json CONNECTION_ID",
				Action:    runEnrichConnection,
			},
		},
	}
}

func runEnrichCategory(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("missing required arguments: graph file and category id")
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.conceptService()
	if err != nil {
		return err
	}

	result, err := svc.EnrichCategory(c.Context, c.String("user"), c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runEnrichConnection(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("missing required arguments: graph file and connection id")
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.conceptService()
	if err != nil {
		return err
	}

	result, err := svc.EnrichConnection(c.Context, c.String("user"), c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	return printJSON(result)
}

// ThesesCommand returns the thesis generation command.
func ThesesCommand() *cli.Command {
	return &cli.Command{
		Name:      "theses",
		Usage:     "Generate theses from a concept graph",
		ArgsUsage: "GRAPH.json",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of theses to request",
				Value:   5,
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Thesis type (ontological, epistemological, ...)",
				Value: "ontological",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "Writing style",
				Value: "academic",
			},
			&cli.BoolFlag{
				Name:  "weights",
				Usage: "Include attribute weights in the prompt",
			},
		},
		Action: runTheses,
	}
}

func runTheses(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: graph file")
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.conceptService()
	if err != nil {
		return err
	}

	theses, err := svc.GenerateTheses(c.Context, c.String("user"), c.Args().Get(0), concepts.ThesisOptions{
		Count:      c.Int("count"),
		Type:       c.String("type"),
		Style:      c.String("style"),
		UseWeights: c.Bool("weights"),
	})
	if err != nil {
		return err
	}
	return printJSON(theses)
}
