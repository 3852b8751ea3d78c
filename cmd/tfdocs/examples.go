package main

import (
	"fmt"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	URL       string `arg:"" help:"Registry resource URL"`
	Text      bool   `help:"Render plain text instead of markdown"`
	BaseLevel int    `name:"base-level" default:"1" help:"Heading level for the section title (1-6)"`
}

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	res, err := deps.Docs.ExtractExamples(deps.Ctx, c.URL, renderConfig(c.BaseLevel, c.Text))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tfdocs.ErrorMessage(err))
		return err
	}

	if !res.Found {
		fmt.Fprintln(deps.Stderr, "Example Usage section not found")
		return tfdocs.Errorf(tfdocs.ENOTFOUND, "Example Usage section not found")
	}

	fmt.Fprintln(deps.Stdout, res.Content)
	return nil
}
