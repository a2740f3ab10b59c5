package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rsdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) (*rsdoc.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (*rsdoc.Response, error) {
	return f.FetchFn(ctx, url, headers)
}
