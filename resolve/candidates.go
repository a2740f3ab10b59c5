// Package resolve turns item paths into documentation pages.
//
// Standard-library items are located by probing every naming convention
// rustdoc uses at once (see Race); third-party items are looked up in the
// crate's all-items listing, which docs.rs always publishes.
package resolve

import (
	"strings"

	"github.com/fwojciec/rsdoc"
)

// Kinds are the rustdoc page kinds probed for standard-library items,
// in candidate order.
var Kinds = []string{"struct", "enum", "fn", "trait", "mod", "type", "macro"}

// IndexKind marks the module index fallback candidate.
const IndexKind = "index"

// Candidate is a URL at which an item's page may exist.
type Candidate struct {
	Kind string
	URL  string
}

// Candidates returns the candidate pages of a standard-library item: one
// per kind in Kinds followed by the module index page. It makes no
// network calls.
func Candidates(hosts rsdoc.Hosts, path rsdoc.ItemPath) []Candidate {
	dir := hosts.CrateRoot(path.Crate)
	for _, m := range path.Modules {
		dir += m + "/"
	}

	candidates := make([]Candidate, 0, len(Kinds)+1)
	for _, kind := range Kinds {
		name := path.Name
		if kind == "macro" {
			name = strings.TrimSuffix(name, "!")
		}
		candidates = append(candidates, Candidate{
			Kind: kind,
			URL:  dir + kind + "." + name + ".html",
		})
	}
	candidates = append(candidates, Candidate{
		Kind: IndexKind,
		URL:  dir + path.Name + "/index.html",
	})
	return candidates
}

// URLs returns the candidate URLs in order.
func URLs(candidates []Candidate) []string {
	urls := make([]string, len(candidates))
	for i, c := range candidates {
		urls[i] = c.URL
	}
	return urls
}
