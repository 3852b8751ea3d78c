package mock

import (
	"context"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
)

var _ tfdocs.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of tfdocs.PageCache.
type PageCache struct {
	GetPageFn    func(ctx context.Context, url string) (*tfdocs.CachedPage, error)
	PutPageFn    func(ctx context.Context, page *tfdocs.CachedPage) error
	PurgePagesFn func(ctx context.Context) (int, error)
}

func (c *PageCache) GetPage(ctx context.Context, url string) (*tfdocs.CachedPage, error) {
	return c.GetPageFn(ctx, url)
}

func (c *PageCache) PutPage(ctx context.Context, page *tfdocs.CachedPage) error {
	return c.PutPageFn(ctx, page)
}

func (c *PageCache) PurgePages(ctx context.Context) (int, error) {
	return c.PurgePagesFn(ctx)
}
