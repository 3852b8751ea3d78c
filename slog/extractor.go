// Package slog provides logging decorators for extraction services.
package slog

import (
	"log/slog"
	"time"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// Ensure LoggingExtractor implements tfdocs.SectionExtractor.
var _ tfdocs.SectionExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a SectionExtractor with debug logging.
type LoggingExtractor struct {
	next   tfdocs.SectionExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tfdocs.SectionExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ListSections logs the listing outcome and delegates.
func (e *LoggingExtractor) ListSections(html string) (names []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("list sections",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ListSections(html)
}

// ExtractSections logs per-name outcomes and delegates.
func (e *LoggingExtractor) ExtractSections(html string, names []string, cfg tfdocs.RenderConfig) (map[string]*tfdocs.SectionResult, error) {
	begin := time.Now()
	results, err := e.next.ExtractSections(html, names, cfg)
	e.logger.Info("extract sections",
		"names", len(names),
		"duration", time.Since(begin),
		"err", err,
	)
	for _, res := range results {
		e.logResult(res)
	}
	return results, err
}

// ExtractSection logs the extraction outcome and delegates. Ignored
// extra matches are surfaced as a warning so silently-dropped content
// is visible in the logs.
func (e *LoggingExtractor) ExtractSection(html string, req tfdocs.SectionRequest) (*tfdocs.SectionResult, error) {
	begin := time.Now()
	res, err := e.next.ExtractSection(html, req)
	e.logger.Info("extract section",
		"name", req.Name,
		"merge", req.Merge,
		"duration", time.Since(begin),
		"err", err,
	)
	if res != nil {
		e.logResult(res)
	}
	return res, err
}

// SectionsHTML delegates to the wrapped extractor.
func (e *LoggingExtractor) SectionsHTML(html string, names []string) (map[string]*tfdocs.SectionResult, error) {
	return e.next.SectionsHTML(html, names)
}

func (e *LoggingExtractor) logResult(res *tfdocs.SectionResult) {
	if res.Matches > 1 && !res.Merged {
		e.logger.Warn("extra section matches ignored",
			"name", res.Name,
			"matches", res.Matches,
		)
	}
	if !res.Found {
		e.logger.Debug("section not found", "name", res.Name)
	}
}
