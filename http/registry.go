package http

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/rsdoc"
)

// Ensure Registry implements rsdoc.Registry at compile time.
var _ rsdoc.Registry = (*Registry)(nil)

// Registry searches crates.io through its JSON API.
type Registry struct {
	fetcher rsdoc.Fetcher
	baseURL string
}

// NewRegistry creates a Registry that issues requests through fetcher
// against the crates.io API rooted at baseURL (e.g. https://crates.io).
func NewRegistry(fetcher rsdoc.Fetcher, baseURL string) *Registry {
	return &Registry{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type searchResponse struct {
	Crates []struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		MaxVersion  string  `json:"max_version"`
		Downloads   int64   `json:"downloads"`
	} `json:"crates"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

// SearchCrates returns one page of crates.io search results,
// rsdoc.SearchPageSize crates per page.
func (r *Registry) SearchCrates(ctx context.Context, query string, page int) (*rsdoc.CrateSearchResult, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(rsdoc.SearchPageSize))
	params.Set("page", strconv.Itoa(page))
	searchURL := r.baseURL + "/api/v1/crates?" + params.Encode()

	resp, err := r.fetcher.Fetch(ctx, searchURL, map[string]string{
		"User-Agent": rsdoc.ToolUserAgent,
		"Accept":     "application/json",
	})
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "crates.io search request failed: %v", err)
	}
	if !resp.OK() {
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "crates.io search failed with status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.Unmarshal([]byte(resp.Body), &sr); err != nil {
		return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "invalid crates.io search response: %v", err)
	}

	result := &rsdoc.CrateSearchResult{
		Crates:     make([]rsdoc.CrateSummary, 0, len(sr.Crates)),
		Total:      sr.Meta.Total,
		Page:       page,
		PerPage:    rsdoc.SearchPageSize,
		TotalPages: (sr.Meta.Total + rsdoc.SearchPageSize - 1) / rsdoc.SearchPageSize,
	}
	for _, c := range sr.Crates {
		summary := rsdoc.CrateSummary{
			Name:       c.Name,
			MaxVersion: c.MaxVersion,
			Downloads:  c.Downloads,
		}
		if c.Description != nil {
			summary.Description = strings.TrimSpace(*c.Description)
		}
		result.Crates = append(result.Crates, summary)
	}

	return result, nil
}
