package tfdocs

import (
	"context"
	"time"
)

// CachedPage is a raw HTML document stored per URL.
type CachedPage struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *CachedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "cached page URL required")
	}
	if p.HTML == "" {
		return Errorf(EINVALID, "cached page HTML required")
	}
	return nil
}

// PageCache stores and replays raw HTML per URL so repeated extractions
// against the same resource avoid re-fetching.
type PageCache interface {
	// GetPage retrieves the cached page for a URL.
	// Returns ENOTFOUND if the URL has not been cached.
	GetPage(ctx context.Context, url string) (*CachedPage, error)

	// PutPage stores a page, replacing any existing entry for its URL.
	PutPage(ctx context.Context, page *CachedPage) error

	// PurgePages removes all cached pages and returns the number removed.
	PurgePages(ctx context.Context) (int, error)
}
