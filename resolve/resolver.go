package resolve

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

// Ensure Resolver implements rsdoc.PageResolver at compile time.
var _ rsdoc.PageResolver = (*Resolver)(nil)

// Resolver locates item pages: standard-library items by racing naming
// candidates, third-party items through the crate's symbol index.
type Resolver struct {
	fetcher rsdoc.Fetcher
	index   *Index
	hosts   rsdoc.Hosts
}

// NewResolver creates a Resolver.
func NewResolver(fetcher rsdoc.Fetcher, index *Index, hosts rsdoc.Hosts) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		index:   index,
		hosts:   hosts,
	}
}

// ResolvePage fetches the documentation page of path.
func (r *Resolver) ResolvePage(ctx context.Context, path rsdoc.ItemPath) (*rsdoc.Response, error) {
	var urls []string
	if path.IsStd() {
		urls = URLs(Candidates(r.hosts, path))
	} else {
		sym, err := r.index.Lookup(ctx, path)
		if err != nil {
			return nil, err
		}
		urls = []string{sym.URL}
	}

	return Race(ctx, r.fetcher, path.String(), urls, r.hosts.HeadersFor(urls[0]))
}
