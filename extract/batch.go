package extract

import (
	"context"
	"sync/atomic"

	"github.com/bits-and-blooms/bloom/v3"
	"golang.org/x/sync/errgroup"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// BatchRunner extracts documentation for many resources concurrently
// and writes the results to files.
type BatchRunner struct {
	Docs        *ResourceDocs
	Concurrency int
	Config      tfdocs.RenderConfig
}

// BatchResult holds the outcome of a batch extraction.
type BatchResult struct {
	Extracted int // resources with at least one section written
	Skipped   int // duplicate or unparseable URLs
	Failed    int
}

// ProgressEvent reports progress during a batch extraction.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Paths     []string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type batchResult struct {
	url   string
	paths []string
	err   error
}

// Run extracts every URL in the batch. URLs are deduplicated by their
// canonical resource address before any fetching happens; a Bloom
// filter keeps the dedup memory bounded for large batches. The progress
// callback, if provided, receives events as extraction proceeds.
func (b *BatchRunner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*BatchResult, error) {
	result := &BatchResult{}

	// dedup up front so Total reflects actual work
	seen := bloom.NewWithEstimates(uint(len(urls))+1, 0.001)
	var work []string
	for _, rawURL := range urls {
		ru, err := tfdocs.ParseResourceURL(rawURL)
		if err != nil {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, URL: rawURL, Error: err})
			}
			continue
		}
		canonical := ru.String()
		if seen.TestAndAddString(canonical) {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, URL: rawURL})
			}
			continue
		}
		work = append(work, canonical)
	}

	total := len(work)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range work {
			url := url
			g.Go(func() error {
				paths, err := b.Docs.SaveToFiles(gctx, url, b.Config)
				resultCh <- batchResult{url: url, paths: paths, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	for r := range resultCh {
		completed.Add(1)
		switch {
		case r.err != nil:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       r.url,
					Error:     r.err,
				})
			}
		default:
			result.Extracted++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       r.url,
					Paths:     r.paths,
				})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}
