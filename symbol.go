package rsdoc

import "strings"

// Symbol is one documented item in a crate's all-items listing.
type Symbol struct {
	Name string `json:"name"` // crate-relative path, e.g. sync::Mutex
	Kind string `json:"kind"`
	Path string `json:"path"` // href as listed
	URL  string `json:"url"`
}

// SymbolIndex is the full listing of one crate, in listing order.
type SymbolIndex struct {
	Crate   string
	Symbols []Symbol
}

// Search returns the symbols whose name contains query, ignoring case.
// Listing order is preserved.
func (idx *SymbolIndex) Search(query string) []Symbol {
	q := strings.ToLower(query)
	results := []Symbol{}
	for _, s := range idx.Symbols {
		if strings.Contains(strings.ToLower(s.Name), q) {
			results = append(results, s)
		}
	}
	return results
}
