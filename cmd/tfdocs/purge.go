package main

import (
	"fmt"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// PurgeCmd is the "purge" subcommand.
type PurgeCmd struct{}

// Run executes the purge command.
func (c *PurgeCmd) Run(deps *Dependencies) error {
	if deps.Cache == nil {
		return tfdocs.Errorf(tfdocs.EINVALID, "no cache configured; purge does nothing with --no-cache")
	}

	n, err := deps.Cache.PurgePages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tfdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "removed %d cached pages\n", n)
	return nil
}
