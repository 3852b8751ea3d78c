package main

import (
	"fmt"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// ArgumentsCmd is the "arguments" subcommand.
type ArgumentsCmd struct {
	URL       string `arg:"" help:"Registry resource URL"`
	Text      bool   `help:"Render plain text instead of markdown"`
	BaseLevel int    `name:"base-level" default:"1" help:"Heading level for the section title (1-6)"`
}

// Run executes the arguments command.
func (c *ArgumentsCmd) Run(deps *Dependencies) error {
	res, err := deps.Docs.ExtractArguments(deps.Ctx, c.URL, renderConfig(c.BaseLevel, c.Text))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tfdocs.ErrorMessage(err))
		return err
	}

	if !res.Found {
		fmt.Fprintln(deps.Stderr, "Argument Reference section not found")
		return tfdocs.Errorf(tfdocs.ENOTFOUND, "Argument Reference section not found")
	}

	fmt.Fprintln(deps.Stdout, res.Content)
	return nil
}
