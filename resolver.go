package rsdoc

import "context"

// PageResolver locates and fetches the documentation page of an item.
type PageResolver interface {
	// ResolvePage returns the successful response for the item's page.
	// Returns ENOTFOUND if no page exists for the item.
	ResolvePage(ctx context.Context, path ItemPath) (*Response, error)
}

// SymbolIndexer provides the all-items index of a crate.
type SymbolIndexer interface {
	SymbolIndex(ctx context.Context, crate string) (*SymbolIndex, error)
}
