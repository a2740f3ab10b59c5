package rsdoc_test

import (
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/stretchr/testify/assert"
)

func TestHosts(t *testing.T) {
	t.Parallel()

	h := rsdoc.DefaultHosts()

	t.Run("builds docs.rs roots with normalized crate identifier", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://docs.rs/serde-json/latest/serde_json/", h.CrateRoot("serde-json"))
		assert.Equal(t, "https://docs.rs/serde-json/latest/serde_json/all.html", h.AllItemsURL("serde-json"))
		assert.Equal(t, "https://docs.rs/serde-json/latest/serde_json/", h.CrateIndexURL("serde-json"))
	})

	t.Run("builds standard library roots", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://doc.rust-lang.org/std/", h.CrateRoot("std"))
		assert.Equal(t, "https://doc.rust-lang.org/core/all.html", h.AllItemsURL("core"))
		assert.Equal(t, "https://doc.rust-lang.org/std/index.html", h.CrateIndexURL("std"))
	})

	t.Run("builds features URL", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://docs.rs/crate/tokio/latest/features", h.FeaturesURL("tokio"))
	})

	t.Run("uses a browser agent for docs.rs only", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, rsdoc.BrowserUserAgent, h.HeadersFor("https://docs.rs/tokio/latest/tokio/")["User-Agent"])
		assert.Equal(t, rsdoc.ToolUserAgent, h.HeadersFor("https://doc.rust-lang.org/std/")["User-Agent"])
		assert.Equal(t, rsdoc.ToolUserAgent, h.HeadersFor("https://crates.io/api/v1/crates")["User-Agent"])
	})
}
