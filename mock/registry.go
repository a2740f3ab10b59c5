package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.Registry = (*Registry)(nil)

// Registry is a mock implementation of rsdoc.Registry.
type Registry struct {
	SearchCratesFn func(ctx context.Context, query string, page int) (*rsdoc.CrateSearchResult, error)
}

func (r *Registry) SearchCrates(ctx context.Context, query string, page int) (*rsdoc.CrateSearchResult, error) {
	return r.SearchCratesFn(ctx, query, page)
}
