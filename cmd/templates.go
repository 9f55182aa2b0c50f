package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Ranatar/philosophical-concepts-service/internal/templates"
)

// TemplatesCommand returns the template management command.
func TemplatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "Manage prompt templates",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List template names",
				Action: runTemplatesList,
			},
			{
				Name:      "show",
				Usage:     "Print one template as JSON",
				ArgsUsage: "NAME",
				Action:    runTemplatesShow,
			},
			{
				Name:      "put",
				Usage:     "Create or update a template from a JSON file",
				ArgsUsage: "NAME FILE",
				Action:    runTemplatesPut,
			},
			{
				Name:      "delete",
				Usage:     "Delete a template",
				ArgsUsage: "NAME",
				Action:    runTemplatesDelete,
			},
		},
	}
}

func runTemplatesList(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	names, err := a.store.ListNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runTemplatesShow(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template name")
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	t, err := a.store.Get(c.Args().Get(0))
	if err != nil {
		return err
	}
	return printJSON(t)
}

func runTemplatesPut(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("missing required arguments: template name and file")
	}
	name := c.Args().Get(0)

	data, err := os.ReadFile(c.Args().Get(1))
	if err != nil {
		return err
	}
	var t templates.Template
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("invalid template file: %w", err)
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.store.Update(name, t); err == nil {
		fmt.Printf("Updated template %s\n", name)
		return nil
	} else if !errors.Is(err, templates.ErrNotFound) {
		return err
	}
	if err := a.store.Create(name, t); err != nil {
		return err
	}
	fmt.Printf("Created template %s\n", name)
	return nil
}

func runTemplatesDelete(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template name")
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	name := c.Args().Get(0)
	if err := a.store.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted template %s\n", name)
	return nil
}
