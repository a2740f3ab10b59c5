package resolve

import (
	"context"
	"net/http"

	"github.com/fwojciec/rsdoc"
)

// Race fetches all urls concurrently and returns the first successful
// (2xx) response, whichever finishes first. Branches still in flight are
// cancelled once a winner is known. A transport error or non-2xx status
// fails only its own branch.
//
// When every branch fails, Race returns ENOTFOUND if any branch saw a 404,
// EUNAVAILABLE otherwise. target names the item in error messages.
func Race(ctx context.Context, fetcher rsdoc.Fetcher, target string, urls []string, headers map[string]string) (*rsdoc.Response, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		resp *rsdoc.Response
		err  error
	}

	// Buffered so losing branches never block after Race returns.
	results := make(chan result, len(urls))
	for _, u := range urls {
		go func() {
			resp, err := fetcher.Fetch(ctx, u, headers)
			results <- result{resp: resp, err: err}
		}()
	}

	notFound := len(urls) == 0
	for range urls {
		r := <-results
		if r.err != nil || r.resp == nil {
			continue
		}
		if r.resp.OK() {
			return r.resp, nil
		}
		if r.resp.StatusCode == http.StatusNotFound {
			notFound = true
		}
	}

	if notFound {
		return nil, rsdoc.Errorf(rsdoc.ENOTFOUND, "no valid documentation page found for `%s`", target)
	}
	return nil, rsdoc.Errorf(rsdoc.EUNAVAILABLE, "all attempts to fetch documentation for `%s` failed", target)
}
