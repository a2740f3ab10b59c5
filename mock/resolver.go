package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.PageResolver = (*PageResolver)(nil)

// PageResolver is a mock implementation of rsdoc.PageResolver.
type PageResolver struct {
	ResolvePageFn func(ctx context.Context, path rsdoc.ItemPath) (*rsdoc.Response, error)
}

func (r *PageResolver) ResolvePage(ctx context.Context, path rsdoc.ItemPath) (*rsdoc.Response, error) {
	return r.ResolvePageFn(ctx, path)
}

var _ rsdoc.SymbolIndexer = (*SymbolIndexer)(nil)

// SymbolIndexer is a mock implementation of rsdoc.SymbolIndexer.
type SymbolIndexer struct {
	SymbolIndexFn func(ctx context.Context, crate string) (*rsdoc.SymbolIndex, error)
}

func (i *SymbolIndexer) SymbolIndex(ctx context.Context, crate string) (*rsdoc.SymbolIndex, error) {
	return i.SymbolIndexFn(ctx, crate)
}
