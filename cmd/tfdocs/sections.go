package main

import (
	"fmt"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	URL string `arg:"" help:"Registry resource URL"`
}

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	names, err := deps.Docs.ListSections(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tfdocs.ErrorMessage(err))
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found.")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
