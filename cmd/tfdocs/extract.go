package main

import (
	"encoding/json"
	"fmt"
	"sort"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL       string   `arg:"" help:"Registry resource URL"`
	Section   []string `short:"s" help:"Section name to extract (repeatable)"`
	All       bool     `help:"Extract every top-level section"`
	Merge     bool     `help:"Merge repeated same-named sections"`
	Text      bool     `help:"Render plain text instead of markdown"`
	BaseLevel int      `name:"base-level" default:"1" help:"Heading level for section titles (1-6)"`
	JSON      bool     `help:"Emit results as JSON"`
}

// Run executes the extract command.
// The command fails when none of the requested sections were found, so
// scripts can rely on the exit code.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if len(c.Section) == 0 && !c.All {
		return tfdocs.Errorf(tfdocs.EINVALID, "specify at least one -s section or --all")
	}

	cfg := renderConfig(c.BaseLevel, c.Text)

	var names []string
	if !c.All {
		names = c.Section
	}

	var results map[string]*tfdocs.SectionResult
	var err error
	if c.Merge && len(c.Section) > 0 {
		results = make(map[string]*tfdocs.SectionResult, len(c.Section))
		for _, name := range c.Section {
			res, rerr := deps.Docs.ExtractSection(deps.Ctx, c.URL, tfdocs.SectionRequest{
				Name:   name,
				Merge:  true,
				Config: cfg,
			})
			if rerr != nil {
				err = rerr
				break
			}
			results[name] = res
		}
	} else {
		results, err = deps.Docs.ExtractSections(deps.Ctx, c.URL, names, cfg)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tfdocs.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
		return c.checkFound(results)
	}

	// stable output order
	keys := make([]string, 0, len(results))
	for name := range results {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	for _, name := range keys {
		res := results[name]
		if !res.Found {
			fmt.Fprintf(deps.Stderr, "section %q not found\n", name)
			continue
		}
		fmt.Fprintln(deps.Stdout, res.Content)
		fmt.Fprintln(deps.Stdout)
	}

	return c.checkFound(results)
}

func (c *ExtractCmd) checkFound(results map[string]*tfdocs.SectionResult) error {
	for _, res := range results {
		if res.Found {
			return nil
		}
	}
	return tfdocs.Errorf(tfdocs.ENOTFOUND, "no requested sections found")
}
