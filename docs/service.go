// Package docs implements rsdoc.DocService on top of the resolver,
// extractor and crate registry, caching every result.
package docs

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/cache"
)

// Ensure Service implements rsdoc.DocService at compile time.
var _ rsdoc.DocService = (*Service)(nil)

// Service answers documentation queries. Results are cached under
// "<operation>:<normalized args>" keys; failures are never cached.
type Service struct {
	Fetcher   rsdoc.Fetcher
	Extractor rsdoc.Extractor
	Registry  rsdoc.Registry
	Resolver  rsdoc.PageResolver
	Index     rsdoc.SymbolIndexer
	Cache     *cache.Cache
	Hosts     rsdoc.Hosts
}

// SearchCrates searches the crate registry. Pages start at 1.
func (s *Service) SearchCrates(ctx context.Context, query string, page int) (*rsdoc.CrateSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, rsdoc.Errorf(rsdoc.EINVALID, "search query must not be empty")
	}
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("search:%s:%d", query, page)
	return cache.Load(ctx, s.Cache, key, func(ctx context.Context) (*rsdoc.CrateSearchResult, error) {
		return s.Registry.SearchCrates(ctx, query, page)
	})
}

// CrateInfo returns the description and top-level modules of a crate.
func (s *Service) CrateInfo(ctx context.Context, crate string) (*rsdoc.CrateInfo, error) {
	crate, err := normalizeCrate(crate)
	if err != nil {
		return nil, err
	}

	return cache.Load(ctx, s.Cache, "info:"+crate, func(ctx context.Context) (*rsdoc.CrateInfo, error) {
		resp, err := s.fetchPage(ctx, s.Hosts.CrateIndexURL(crate), "crate `"+crate+"`")
		if err != nil {
			return nil, err
		}
		return s.Extractor.ExtractCrateInfo(resp.Body)
	})
}

// CrateFeatures returns the feature flags docs.rs lists for a crate.
func (s *Service) CrateFeatures(ctx context.Context, crate string) ([]rsdoc.Feature, error) {
	crate, err := normalizeCrate(crate)
	if err != nil {
		return nil, err
	}

	return cache.Load(ctx, s.Cache, "features:"+crate, func(ctx context.Context) ([]rsdoc.Feature, error) {
		resp, err := s.fetchPage(ctx, s.Hosts.FeaturesURL(crate), "features of `"+crate+"`")
		if err != nil {
			return nil, err
		}
		return s.Extractor.ExtractFeatures(resp.Body)
	})
}

// ItemDefinition returns the structured documentation of an item.
// Failures keep their code and are prefixed with the item path.
func (s *Service) ItemDefinition(ctx context.Context, itemPath string) (*rsdoc.ItemDefinition, error) {
	path, err := parsePath(itemPath)
	if err != nil {
		return nil, err
	}

	def, err := cache.Load(ctx, s.Cache, "definition:"+path.String(), func(ctx context.Context) (*rsdoc.ItemDefinition, error) {
		resp, err := s.Resolver.ResolvePage(ctx, path)
		if err != nil {
			return nil, err
		}
		def, err := s.Extractor.ExtractItem(resp.Body)
		if err != nil {
			return nil, err
		}
		def.Normalize()
		return def, nil
	})
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.ErrorCode(err), "failed to get definition for %s: %s", path, rsdoc.ErrorMessage(err))
	}
	return def, nil
}

// ItemExamples returns the example code blocks of an item. An item whose
// page cannot be resolved or fetched has no examples.
func (s *Service) ItemExamples(ctx context.Context, itemPath string) ([]string, error) {
	path, err := parsePath(itemPath)
	if err != nil {
		return nil, err
	}

	examples, err := cache.Load(ctx, s.Cache, "examples:"+path.String(), func(ctx context.Context) ([]string, error) {
		resp, err := s.Resolver.ResolvePage(ctx, path)
		if err != nil {
			return nil, err
		}
		examples, err := s.Extractor.ExtractExamples(resp.Body)
		if err != nil {
			return nil, err
		}
		if examples == nil {
			examples = []string{}
		}
		return examples, nil
	})
	if err != nil {
		return []string{}, nil
	}
	return examples, nil
}

// ItemExample returns the n-th (1-based) example of an item.
func (s *Service) ItemExample(ctx context.Context, itemPath string, n int) (string, error) {
	if n < 1 {
		return rsdoc.SelectExample(itemPath, nil, n)
	}

	examples, err := s.ItemExamples(ctx, itemPath)
	if err != nil {
		return "", err
	}
	return rsdoc.SelectExample(strings.TrimSpace(itemPath), examples, n)
}

// SearchInCrate returns the crate's items whose path contains query,
// ignoring case, in listing order.
func (s *Service) SearchInCrate(ctx context.Context, crate, query string) ([]rsdoc.Symbol, error) {
	crate, err := normalizeCrate(crate)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	key := fmt.Sprintf("search-in:%s:%s", crate, query)
	return cache.Load(ctx, s.Cache, key, func(ctx context.Context) ([]rsdoc.Symbol, error) {
		idx, err := s.Index.SymbolIndex(ctx, crate)
		if err != nil {
			return nil, err
		}
		return idx.Search(query), nil
	})
}

// fetchPage fetches a single page, mapping a 404 to ENOTFOUND and any
// other failure to EUNAVAILABLE. what names the page in error messages.
func (s *Service) fetchPage(ctx context.Context, url, what string) (*rsdoc.Response, error) {
	resp, err := s.Fetcher.Fetch(ctx, url, s.Hosts.HeadersFor(url))
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "failed to fetch %s: %s", what, rsdoc.ErrorMessage(err))
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, rsdoc.Errorf(rsdoc.ENOTFOUND, "no documentation found for %s", what)
	case !resp.OK():
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "failed to fetch %s: status %d", what, resp.StatusCode)
	}
	return resp, nil
}

func normalizeCrate(crate string) (string, error) {
	crate = strings.ToLower(strings.TrimSpace(crate))
	if crate == "" {
		return "", rsdoc.Errorf(rsdoc.EINVALID, "crate name must not be empty")
	}
	return crate, nil
}

func parsePath(itemPath string) (rsdoc.ItemPath, error) {
	path, err := rsdoc.ParseItemPath(itemPath)
	if err != nil {
		return rsdoc.ItemPath{}, err
	}
	path.Crate = strings.ToLower(path.Crate)
	return path, nil
}
