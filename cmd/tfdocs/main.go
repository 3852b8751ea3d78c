package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/IdoAtNP/terraform-resource-docs/extract"
	"github.com/IdoAtNP/terraform-resource-docs/fs"
	"github.com/IdoAtNP/terraform-resource-docs/goquery"
	"github.com/IdoAtNP/terraform-resource-docs/htmltomarkdown"
	tfhttp "github.com/IdoAtNP/terraform-resource-docs/http"
	"github.com/IdoAtNP/terraform-resource-docs/rod"
	tfslog "github.com/IdoAtNP/terraform-resource-docs/slog"
	"github.com/IdoAtNP/terraform-resource-docs/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache database path. Set before calling Run().
	CachePath string

	// SQLite database backing the page cache.
	DB *sqlite.DB

	// Fetcher override for end-to-end testing. When nil, Run wires a
	// browser or HTTP fetcher based on flags.
	Fetcher tfdocs.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tfdocs"),
		kong.Description("Extract documentation sections from Terraform Registry resource pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tfdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Page cache, unless disabled
	var cache tfdocs.PageCache
	if !cli.NoCache {
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TFDOCS_CACHE to use a different cache path, or pass --no-cache\n")
			return fmt.Errorf("failed to open cache at %q: %w", m.CachePath, err)
		}
		defer m.Close()
		cache = sqlite.NewPageService(m.DB)
	}

	// Fetcher: headless browser by default, plain HTTP with --static
	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Static {
			fetcher = tfhttp.NewFetcher(tfhttp.WithTimeout(cli.Timeout))
		} else {
			browserFetcher, err := rod.NewFetcher(rod.WithRenderTimeout(cli.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static for pre-rendered sources")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		}
		defer fetcher.Close()
	}
	if cli.Verbose {
		fetcher = rod.NewLoggingFetcher(fetcher, logger)
	}

	var extractor tfdocs.SectionExtractor = goquery.NewExtractor(htmltomarkdown.NewRenderer())
	if cli.Verbose {
		extractor = tfslog.NewLoggingExtractor(extractor, logger)
	}

	deps.Docs = &extract.ResourceDocs{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Cache:       cache,
		Writer:      fs.NewWriter(cli.Out),
		RateLimiter: extract.NewDomainLimiter(cli.RPS),
	}
	deps.Cache = cache
	deps.Logger = logger

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("TFDOCS_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tfdocs.db"
	}
	dir := filepath.Join(home, ".tfdocs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tfdocs.db")
}
