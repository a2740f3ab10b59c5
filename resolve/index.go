package resolve

import (
	"context"
	"net/http"
	"strings"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/bloom"
	"github.com/fwojciec/rsdoc/cache"
)

// Ensure Index implements rsdoc.SymbolIndexer at compile time.
var _ rsdoc.SymbolIndexer = (*Index)(nil)

// Index serves crate all-items listings, fetched once per crate and kept
// in the shared cache under "symbols:<crate>".
type Index struct {
	fetcher   rsdoc.Fetcher
	extractor rsdoc.Extractor
	cache     *cache.Cache
	hosts     rsdoc.Hosts
}

// NewIndex creates an Index.
func NewIndex(fetcher rsdoc.Fetcher, extractor rsdoc.Extractor, c *cache.Cache, hosts rsdoc.Hosts) *Index {
	return &Index{
		fetcher:   fetcher,
		extractor: extractor,
		cache:     c,
		hosts:     hosts,
	}
}

// crateIndex is the cached form of a listing: the symbols plus a filter
// over their names and trailing segments.
type crateIndex struct {
	symbols *rsdoc.SymbolIndex
	names   *bloom.NameSet
}

// SymbolIndex returns the all-items index of crate.
func (x *Index) SymbolIndex(ctx context.Context, crate string) (*rsdoc.SymbolIndex, error) {
	ci, err := x.load(ctx, crate)
	if err != nil {
		return nil, err
	}
	return ci.symbols, nil
}

// Lookup finds the symbol for path in its crate's index. An exact match on
// the crate-relative path wins; otherwise the first symbol, in listing
// order, whose path or trailing segment equals the item name. A trailing
// "!" on the item name is ignored.
func (x *Index) Lookup(ctx context.Context, path rsdoc.ItemPath) (rsdoc.Symbol, error) {
	ci, err := x.load(ctx, path.Crate)
	if err != nil {
		return rsdoc.Symbol{}, err
	}

	local := path.Local()
	name := strings.TrimSuffix(path.Name, "!")
	if ci.names.MayContainAny(local, name) {
		for _, s := range ci.symbols.Symbols {
			if s.Name == local {
				return s, nil
			}
		}
		for _, s := range ci.symbols.Symbols {
			if s.Name == name || lastSegment(s.Name) == name {
				return s, nil
			}
		}
	}
	return rsdoc.Symbol{}, rsdoc.Errorf(rsdoc.ENOTFOUND, "could not find documentation for `%s`", path)
}

func (x *Index) load(ctx context.Context, crate string) (*crateIndex, error) {
	crate = strings.ToLower(strings.TrimSpace(crate))
	return cache.Load(ctx, x.cache, "symbols:"+crate, func(ctx context.Context) (*crateIndex, error) {
		return x.build(ctx, crate)
	})
}

func (x *Index) build(ctx context.Context, crate string) (*crateIndex, error) {
	listURL := x.hosts.AllItemsURL(crate)
	resp, err := x.fetcher.Fetch(ctx, listURL, x.hosts.HeadersFor(listURL))
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "failed to fetch item listing for `%s`: %s", crate, rsdoc.ErrorMessage(err))
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, rsdoc.Errorf(rsdoc.ENOTFOUND, "crate `%s` has no documentation", crate)
	case !resp.OK():
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "failed to fetch item listing for `%s`: status %d", crate, resp.StatusCode)
	}

	symbols, err := x.extractor.ExtractSymbols(resp.Body, x.hosts.CrateRoot(crate))
	if err != nil {
		return nil, err
	}

	names := bloom.NewNameSet(uint(2*len(symbols)), bloom.DefaultFalsePositiveRate)
	for _, s := range symbols {
		names.Add(s.Name, lastSegment(s.Name))
	}

	return &crateIndex{
		symbols: &rsdoc.SymbolIndex{Crate: crate, Symbols: symbols},
		names:   names,
	}, nil
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}
	return name
}
