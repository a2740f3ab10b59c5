package rsdoc

import "context"

// DefaultCrateDescription is used when a crate page has no description metadata.
const DefaultCrateDescription = "No description found."

// SearchPageSize is the number of crates returned per search page.
const SearchPageSize = 5

// CrateInfo summarizes a crate's root documentation page.
type CrateInfo struct {
	Description string   `json:"description"`
	Modules     []string `json:"modules"`
}

// Feature is one entry of a crate's feature flag list.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CrateSummary is one crate in a registry search result.
type CrateSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxVersion  string `json:"maxVersion"`
	Downloads   int64  `json:"downloads"`
}

// CrateSearchResult is one page of registry search results.
type CrateSearchResult struct {
	Crates     []CrateSummary `json:"crates"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	TotalPages int            `json:"totalPages"`
}

// Registry searches the crate registry.
type Registry interface {
	// SearchCrates returns the given 1-based page of crates matching query.
	SearchCrates(ctx context.Context, query string, page int) (*CrateSearchResult, error)
}
