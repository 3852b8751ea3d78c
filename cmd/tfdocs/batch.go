package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/IdoAtNP/terraform-resource-docs/extract"
)

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" help:"Registry resource URLs"`
	File        string   `short:"f" help:"File with one URL per line"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	BaseLevel   int      `name:"base-level" default:"1" help:"Heading level for section titles (1-6)"`
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.File != "" {
		fileURLs, err := readURLFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		urls = append(urls, fileURLs...)
	}
	if len(urls) == 0 {
		return tfdocs.Errorf(tfdocs.EINVALID, "no URLs given; pass them as arguments or with -f")
	}

	runner := &extract.BatchRunner{
		Docs:        deps.Docs,
		Concurrency: c.Concurrency,
		Config:      renderConfig(c.BaseLevel, false),
	}

	result, err := runner.Run(deps.Ctx, urls, func(e extract.ProgressEvent) {
		switch e.Type {
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
			for _, path := range e.Paths {
				fmt.Fprintf(deps.Stdout, "  %s\n", path)
			}
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", e.Completed, e.Total, e.URL, tfdocs.ErrorMessage(e.Error))
		case extract.ProgressSkipped:
			if e.Error != nil {
				fmt.Fprintf(deps.Stderr, "skipping %s: %s\n", e.URL, tfdocs.ErrorMessage(e.Error))
			}
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n%d extracted, %d skipped, %d failed\n",
		result.Extracted, result.Skipped, result.Failed)

	if result.Extracted == 0 {
		return tfdocs.Errorf(tfdocs.ENOTFOUND, "no resources extracted")
	}
	return nil
}

// readURLFile reads one URL per line, skipping blanks and # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
