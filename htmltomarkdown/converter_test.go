package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements rsdoc.Converter at compile time.
var _ rsdoc.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello, world!</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">package main

func main() {
    println("Hello")
}
</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, "package main")
		assert.Contains(t, md, "```")
	})

	t.Run("converts code blocks without language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code>some code here</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "some code here")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EINVALID, rsdoc.ErrorCode(err))
	})

	t.Run("fences rustdoc examples as rust", func(t *testing.T) {
		t.Parallel()

		html := `<div class="example-wrap"><pre class="rust rust-example-rendered"><code><span class="kw">let </span>v = <span class="macro">vec!</span>[<span class="number">1</span>];
</code></pre><div class="button-holder"><button class="copy-button">Copy</button></div></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```rust")
		assert.Contains(t, md, "let v = vec![1];")
		assert.NotContains(t, md, "Copy")
	})

	t.Run("strips heading anchors", func(t *testing.T) {
		t.Parallel()

		html := `<h2 id="examples"><a class="doc-anchor" href="#examples">§</a>Examples</h2><p>Use it.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## Examples")
		assert.NotContains(t, md, "§")
	})

	t.Run("converts a rustdoc docblock", func(t *testing.T) {
		t.Parallel()

		html := `<div class="docblock"><p>An asynchronous <code>Mutex</code>-like type.</p>
<p>This type acts similarly to <a href="https://doc.rust-lang.org/std/sync/struct.Mutex.html"><code>std::sync::Mutex</code></a>.</p>
<h2 id="which-kind-of-mutex-should-you-use"><a class="doc-anchor" href="#which-kind-of-mutex-should-you-use">§</a>Which kind of mutex should you use?</h2>
<ul><li>Use the standard library mutex when possible.</li></ul></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "An asynchronous `Mutex`-like type.")
		assert.Contains(t, md, "[`std::sync::Mutex`](https://doc.rust-lang.org/std/sync/struct.Mutex.html)")
		assert.Contains(t, md, "## Which kind of mutex should you use?")
		assert.Contains(t, md, "- Use the standard library mutex when possible.")
	})
}
