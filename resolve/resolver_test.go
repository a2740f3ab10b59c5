package resolve_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/cache"
	"github.com/fwojciec/rsdoc/mock"
	"github.com/fwojciec/rsdoc/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolvePage(t *testing.T) {
	t.Parallel()

	t.Run("std item races all candidates with the tool agent", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var requested []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, headers map[string]string) (*rsdoc.Response, error) {
				mu.Lock()
				requested = append(requested, url)
				mu.Unlock()
				assert.Equal(t, rsdoc.ToolUserAgent, headers["User-Agent"])
				if strings.HasSuffix(url, "/trait.Read.html") {
					return &rsdoc.Response{URL: url, StatusCode: 200, Body: "read"}, nil
				}
				return &rsdoc.Response{URL: url, StatusCode: 404}, nil
			},
		}
		r := resolve.NewResolver(fetcher, resolve.NewIndex(fetcher, &mock.Extractor{}, cache.New(), rsdoc.DefaultHosts()), rsdoc.DefaultHosts())

		resp, err := r.ResolvePage(context.Background(), mustParse(t, "std::io::Read"))

		require.NoError(t, err)
		assert.Equal(t, "https://doc.rust-lang.org/std/io/trait.Read.html", resp.URL)
		mu.Lock()
		defer mu.Unlock()
		for _, u := range requested {
			assert.True(t, strings.HasPrefix(u, "https://doc.rust-lang.org/std/io/"), u)
		}
	})

	t.Run("std item with no page is not found", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (*rsdoc.Response, error) {
				return &rsdoc.Response{URL: url, StatusCode: 404}, nil
			},
		}
		r := resolve.NewResolver(fetcher, resolve.NewIndex(fetcher, &mock.Extractor{}, cache.New(), rsdoc.DefaultHosts()), rsdoc.DefaultHosts())

		_, err := r.ResolvePage(context.Background(), mustParse(t, "std::collections::HashMapp"))

		assert.Equal(t, rsdoc.ENOTFOUND, rsdoc.ErrorCode(err))
		assert.Contains(t, rsdoc.ErrorMessage(err), "std::collections::HashMapp")
	})

	t.Run("third-party item fetches the indexed page with a browser agent", func(t *testing.T) {
		t.Parallel()

		var pageFetches int
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, headers map[string]string) (*rsdoc.Response, error) {
				assert.Equal(t, rsdoc.BrowserUserAgent, headers["User-Agent"])
				if strings.HasSuffix(url, "/all.html") {
					return &rsdoc.Response{URL: url, StatusCode: 200}, nil
				}
				pageFetches++
				return &rsdoc.Response{URL: url, StatusCode: 200, Body: "mutex"}, nil
			},
		}
		extractor := &mock.Extractor{
			ExtractSymbolsFn: func(_, _ string) ([]rsdoc.Symbol, error) { return tokioSymbols, nil },
		}
		hosts := rsdoc.DefaultHosts()
		r := resolve.NewResolver(fetcher, resolve.NewIndex(fetcher, extractor, cache.New(), hosts), hosts)

		resp, err := r.ResolvePage(context.Background(), mustParse(t, "tokio::sync::Mutex"))

		require.NoError(t, err)
		assert.Equal(t, "mutex", resp.Body)
		assert.Equal(t, 1, pageFetches)
	})

	t.Run("third-party miss fails before any page fetch", func(t *testing.T) {
		t.Parallel()

		var pageFetches int
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (*rsdoc.Response, error) {
				if !strings.HasSuffix(url, "/all.html") {
					pageFetches++
				}
				return &rsdoc.Response{URL: url, StatusCode: 200}, nil
			},
		}
		extractor := &mock.Extractor{
			ExtractSymbolsFn: func(_, _ string) ([]rsdoc.Symbol, error) { return tokioSymbols, nil },
		}
		hosts := rsdoc.DefaultHosts()
		r := resolve.NewResolver(fetcher, resolve.NewIndex(fetcher, extractor, cache.New(), hosts), hosts)

		_, err := r.ResolvePage(context.Background(), mustParse(t, "tokio::runtime::Nope"))

		assert.Equal(t, rsdoc.ENOTFOUND, rsdoc.ErrorCode(err))
		assert.Equal(t, "could not find documentation for `tokio::runtime::Nope`", rsdoc.ErrorMessage(err))
		assert.Zero(t, pageFetches)
	})
}
