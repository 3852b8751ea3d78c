package main

import (
	"fmt"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL       string `arg:"" help:"Registry resource URL"`
	BaseLevel int    `name:"base-level" default:"1" help:"Heading level for section titles (1-6)"`
}

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	paths, err := deps.Docs.SaveToFiles(deps.Ctx, c.URL, renderConfig(c.BaseLevel, false))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tfdocs.ErrorMessage(err))
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}
