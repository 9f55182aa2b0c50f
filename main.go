package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Ranatar/philosophical-concepts-service/cmd"
)

const (
	version = "0.1.0"
)

func main() {
	app := &cli.App{
		Name:    "conceptsvc",
		Usage:   "LLM-assisted analysis and synthesis of philosophical concept graphs",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "User id recorded in the interaction log",
				Value:   "cli",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			cmd.TemplatesCommand(),
			cmd.ValidateCommand(),
			cmd.EnrichCommand(),
			cmd.ThesesCommand(),
			cmd.CompatCommand(),
			cmd.SynthesizeCommand(),
			cmd.CritiqueCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
