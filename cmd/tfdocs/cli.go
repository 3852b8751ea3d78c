package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/IdoAtNP/terraform-resource-docs/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Docs   *extract.ResourceDocs
	Cache  tfdocs.PageCache
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Enable debug logging"`
	Static  bool          `help:"Fetch with plain HTTP instead of a headless browser"`
	NoCache bool          `help:"Skip the page cache"`
	Timeout time.Duration `default:"10s" help:"Fetch/render timeout"`
	Out     string        `short:"o" default:"." help:"Output directory for written files"`
	RPS     float64       `default:"1" help:"Max requests per second per domain"`

	Sections  SectionsCmd  `cmd:"" help:"List the section names on a resource page"`
	Extract   ExtractCmd   `cmd:"" help:"Extract named sections from a resource page"`
	Examples  ExamplesCmd  `cmd:"" help:"Extract the Example Usage section"`
	Arguments ArgumentsCmd `cmd:"" help:"Extract the Argument Reference section"`
	Save      SaveCmd      `cmd:"" help:"Extract both well-known sections to files"`
	Batch     BatchCmd     `cmd:"" help:"Extract documentation for many resources"`
	Purge     PurgeCmd     `cmd:"" help:"Remove all cached pages"`
}

// renderConfig builds the render configuration shared by the extraction
// commands.
func renderConfig(baseLevel int, asText bool) tfdocs.RenderConfig {
	cfg := tfdocs.DefaultRenderConfig()
	if baseLevel > 0 {
		cfg.BaseHeadingLevel = baseLevel
	}
	cfg.AsText = asText
	return cfg
}
