package rsdoc

import "context"

// DocService answers documentation queries. Every operation is cached.
type DocService interface {
	// SearchCrates searches the registry. Pages are 1-based; values
	// below 1 are treated as 1.
	SearchCrates(ctx context.Context, query string, page int) (*CrateSearchResult, error)

	// CrateInfo returns the description and top-level modules of a crate.
	CrateInfo(ctx context.Context, crate string) (*CrateInfo, error)

	// CrateFeatures returns a crate's feature flags.
	CrateFeatures(ctx context.Context, crate string) ([]Feature, error)

	// ItemDefinition resolves and extracts an item page.
	// Returns ENOTFOUND if no page exists for the path.
	ItemDefinition(ctx context.Context, itemPath string) (*ItemDefinition, error)

	// ItemExamples returns the code examples of an item. A page that
	// cannot be fetched yields an empty list, not an error.
	ItemExamples(ctx context.Context, itemPath string) ([]string, error)

	// ItemExample returns the 1-based n-th example of an item.
	// Returns EINVALID if n is out of range.
	ItemExample(ctx context.Context, itemPath string, n int) (string, error)

	// SearchInCrate filters a crate's symbol index by name.
	SearchInCrate(ctx context.Context, crate string, query string) ([]Symbol, error)
}
