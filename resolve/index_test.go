package resolve_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/cache"
	"github.com/fwojciec/rsdoc/mock"
	"github.com/fwojciec/rsdoc/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokioSymbols = []rsdoc.Symbol{
	{Name: "net::TcpListener", Kind: "Struct", Path: "net/struct.TcpListener.html", URL: "https://docs.rs/tokio/latest/tokio/net/struct.TcpListener.html"},
	{Name: "sync::Mutex", Kind: "Struct", Path: "sync/struct.Mutex.html", URL: "https://docs.rs/tokio/latest/tokio/sync/struct.Mutex.html"},
	{Name: "sync::mpsc::Sender", Kind: "Struct", Path: "sync/mpsc/struct.Sender.html", URL: "https://docs.rs/tokio/latest/tokio/sync/mpsc/struct.Sender.html"},
	{Name: "sync::oneshot::Sender", Kind: "Struct", Path: "sync/oneshot/struct.Sender.html", URL: "https://docs.rs/tokio/latest/tokio/sync/oneshot/struct.Sender.html"},
	{Name: "select", Kind: "Macro", Path: "macro.select.html", URL: "https://docs.rs/tokio/latest/tokio/macro.select.html"},
}

// listingFixture returns a fetcher serving an all-items page and an
// extractor returning symbols for it, counting listing fetches.
func listingFixture(status int, symbols []rsdoc.Symbol) (*mock.Fetcher, *mock.Extractor, *atomic.Int32) {
	var fetches atomic.Int32
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string, _ map[string]string) (*rsdoc.Response, error) {
			fetches.Add(1)
			return &rsdoc.Response{URL: url, StatusCode: status, Body: "<html>all items</html>"}, nil
		},
	}
	extractor := &mock.Extractor{
		ExtractSymbolsFn: func(_, _ string) ([]rsdoc.Symbol, error) {
			return symbols, nil
		},
	}
	return fetcher, extractor, &fetches
}

func TestIndex_SymbolIndex(t *testing.T) {
	t.Parallel()

	t.Run("fetches the crate listing once", func(t *testing.T) {
		t.Parallel()

		var gotURL, gotBase string
		fetcher, extractor, fetches := listingFixture(200, tokioSymbols)
		inner := fetcher.FetchFn
		fetcher.FetchFn = func(ctx context.Context, url string, h map[string]string) (*rsdoc.Response, error) {
			gotURL = url
			return inner(ctx, url, h)
		}
		extractor.ExtractSymbolsFn = func(_, baseURL string) ([]rsdoc.Symbol, error) {
			gotBase = baseURL
			return tokioSymbols, nil
		}
		idx := resolve.NewIndex(fetcher, extractor, cache.New(), rsdoc.DefaultHosts())

		first, err := idx.SymbolIndex(context.Background(), "tokio")
		require.NoError(t, err)
		second, err := idx.SymbolIndex(context.Background(), "tokio")
		require.NoError(t, err)

		assert.Equal(t, int32(1), fetches.Load())
		assert.Equal(t, "https://docs.rs/tokio/latest/tokio/all.html", gotURL)
		assert.Equal(t, "https://docs.rs/tokio/latest/tokio/", gotBase)
		assert.Equal(t, "tokio", first.Crate)
		assert.Same(t, first, second)
	})

	t.Run("hyphenated crate uses underscore identifier", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (*rsdoc.Response, error) {
				gotURL = url
				return &rsdoc.Response{StatusCode: 200}, nil
			},
		}
		_, extractor, _ := listingFixture(200, nil)
		idx := resolve.NewIndex(fetcher, extractor, cache.New(), rsdoc.DefaultHosts())

		_, err := idx.SymbolIndex(context.Background(), "serde-json")

		require.NoError(t, err)
		assert.Equal(t, "https://docs.rs/serde-json/latest/serde_json/all.html", gotURL)
	})

	t.Run("missing listing is not found", func(t *testing.T) {
		t.Parallel()

		fetcher, extractor, _ := listingFixture(404, nil)
		idx := resolve.NewIndex(fetcher, extractor, cache.New(), rsdoc.DefaultHosts())

		_, err := idx.SymbolIndex(context.Background(), "nope")

		assert.Equal(t, rsdoc.ENOTFOUND, rsdoc.ErrorCode(err))
	})

	t.Run("server error is unavailable and not cached", func(t *testing.T) {
		t.Parallel()

		fetcher, extractor, fetches := listingFixture(500, nil)
		idx := resolve.NewIndex(fetcher, extractor, cache.New(), rsdoc.DefaultHosts())

		_, err := idx.SymbolIndex(context.Background(), "tokio")
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
		_, err = idx.SymbolIndex(context.Background(), "tokio")
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))

		assert.Equal(t, int32(2), fetches.Load())
	})

	t.Run("transport error is unavailable", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string, map[string]string) (*rsdoc.Response, error) {
				return nil, errors.New("connection refused")
			},
		}
		idx := resolve.NewIndex(fetcher, &mock.Extractor{}, cache.New(), rsdoc.DefaultHosts())

		_, err := idx.SymbolIndex(context.Background(), "tokio")

		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	newIndex := func() *resolve.Index {
		fetcher, extractor, _ := listingFixture(200, tokioSymbols)
		return resolve.NewIndex(fetcher, extractor, cache.New(), rsdoc.DefaultHosts())
	}

	t.Run("exact path match", func(t *testing.T) {
		t.Parallel()

		sym, err := newIndex().Lookup(context.Background(), mustParse(t, "tokio::sync::oneshot::Sender"))

		require.NoError(t, err)
		assert.Equal(t, "sync::oneshot::Sender", sym.Name)
	})

	t.Run("re-exported path falls back to the first name match", func(t *testing.T) {
		t.Parallel()

		sym, err := newIndex().Lookup(context.Background(), mustParse(t, "tokio::Sender"))

		require.NoError(t, err)
		assert.Equal(t, "sync::mpsc::Sender", sym.Name)
	})

	t.Run("macro bang is ignored", func(t *testing.T) {
		t.Parallel()

		sym, err := newIndex().Lookup(context.Background(), mustParse(t, "tokio::select!"))

		require.NoError(t, err)
		assert.Equal(t, "Macro", sym.Kind)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		t.Parallel()

		_, err := newIndex().Lookup(context.Background(), mustParse(t, "tokio::sync::Semaphoor"))

		assert.Equal(t, rsdoc.ENOTFOUND, rsdoc.ErrorCode(err))
		assert.Equal(t, "could not find documentation for `tokio::sync::Semaphoor`", rsdoc.ErrorMessage(err))
	})
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	fetcher, extractor, _ := listingFixture(200, tokioSymbols)
	idx := resolve.NewIndex(fetcher, extractor, cache.New(), rsdoc.DefaultHosts())

	si, err := idx.SymbolIndex(context.Background(), "tokio")
	require.NoError(t, err)

	got := si.Search("SENDER")

	require.Len(t, got, 2)
	assert.Equal(t, "sync::mpsc::Sender", got[0].Name)
	assert.Equal(t, "sync::oneshot::Sender", got[1].Name)
}
