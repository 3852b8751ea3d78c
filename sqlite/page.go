package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

// Compile-time interface verification.
var _ tfdocs.PageCache = (*PageService)(nil)

// PageService implements tfdocs.PageCache using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// GetPage retrieves the cached page for a URL.
// Returns ENOTFOUND if the URL has not been cached.
func (s *PageService) GetPage(ctx context.Context, url string) (*tfdocs.CachedPage, error) {
	var page tfdocs.CachedPage
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.HTML, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, tfdocs.Errorf(tfdocs.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// PutPage stores a page, replacing any existing entry for its URL.
func (s *PageService) PutPage(ctx context.Context, page *tfdocs.CachedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	if page.ContentHash == "" {
		page.ContentHash = hashContent(page.HTML)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.URL, page.HTML, page.ContentHash, page.FetchedAt.Format(time.RFC3339))

	return err
}

// PurgePages removes all cached pages and returns the number removed.
func (s *PageService) PurgePages(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM pages`)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
