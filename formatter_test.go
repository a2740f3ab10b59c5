package rsdoc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/stretchr/testify/assert"
)

func TestFormatSearchResult(t *testing.T) {
	t.Parallel()

	t.Run("lists crates with pagination header", func(t *testing.T) {
		t.Parallel()

		r := &rsdoc.CrateSearchResult{
			Crates: []rsdoc.CrateSummary{
				{Name: "serde", Description: "A serialization framework", MaxVersion: "1.0.200"},
				{Name: "serde_json"},
			},
			Total:      12,
			Page:       2,
			TotalPages: 3,
		}

		result := rsdoc.FormatSearchResult("serde", r)

		assert.Contains(t, result, `Found 12 crates for "serde" (page 2 of 3)`)
		assert.Contains(t, result, "- serde (1.0.200): A serialization framework")
		assert.Contains(t, result, "- serde_json: No description found.")
	})

	t.Run("reports empty result", func(t *testing.T) {
		t.Parallel()

		result := rsdoc.FormatSearchResult("zzz", &rsdoc.CrateSearchResult{})

		assert.Equal(t, `No crates found for "zzz".`, result)
	})
}

func TestFormatItemDefinition(t *testing.T) {
	t.Parallel()

	t.Run("includes populated sections only", func(t *testing.T) {
		t.Parallel()

		d := rsdoc.NewItemDefinition()
		d.ItemType = "Struct"
		d.Definition = "pub struct Mutex<T> { /* private fields */ }"
		d.Methods = []rsdoc.Method{{Name: "new", Signature: "pub fn new(t: T) -> Mutex<T>", Docs: "Creates a new lock."}}
		d.TraitImplementations = []rsdoc.TraitImpl{{FullImpl: "impl<T> Send for Mutex<T>", IsAuto: true}}

		result := rsdoc.FormatItemDefinition("tokio::sync::Mutex", d)

		assert.Contains(t, result, "# Struct `tokio::sync::Mutex`")
		assert.Contains(t, result, "pub struct Mutex<T>")
		assert.Contains(t, result, "- `pub fn new(t: T) -> Mutex<T>` - Creates a new lock.")
		assert.Contains(t, result, "- `impl<T> Send for Mutex<T>` (auto)")
		assert.Contains(t, result, "No documentation found.")
		assert.NotContains(t, result, "## Fields")
		assert.NotContains(t, result, "## Type Alias")
	})

	t.Run("shows type alias before definition", func(t *testing.T) {
		t.Parallel()

		alias := "pub type Result<T> = Result<T, Error>;"
		d := rsdoc.NewItemDefinition()
		d.ItemType = "Type Alias"
		d.TypeAliasDefinition = &alias
		d.Definition = "pub enum Result<T> { Ok(T), Err(Error) }"

		result := rsdoc.FormatItemDefinition("std::io::Result", d)

		assert.Less(t, indexOf(result, "## Type Alias"), indexOf(result, "## Definition"))
	})
}

func TestFormatSymbols(t *testing.T) {
	t.Parallel()

	symbols := []rsdoc.Symbol{
		{Name: "sync::Mutex", Kind: "Struct", Path: "sync/struct.Mutex.html"},
	}

	result := rsdoc.FormatSymbols("tokio", "mutex", symbols)

	assert.Contains(t, result, `Found 1 items matching "mutex" in tokio`)
	assert.Contains(t, result, "- Struct sync::Mutex (sync/struct.Mutex.html)")
}

func TestFormatFeatures(t *testing.T) {
	t.Parallel()

	result := rsdoc.FormatFeatures("tokio", []rsdoc.Feature{{Name: "full", Description: "Enables: net, rt"}})

	assert.Contains(t, result, "- **full**: Enables: net, rt")
	assert.Equal(t, "No features found for empty.", rsdoc.FormatFeatures("empty", nil))
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func TestFormatExamples(t *testing.T) {
	t.Parallel()

	t.Run("numbers each example", func(t *testing.T) {
		t.Parallel()

		result := rsdoc.FormatExamples("std::vec::Vec", []string{"let v = vec![1];", "v.push(2);"})

		assert.True(t, strings.HasPrefix(result, "2 examples for `std::vec::Vec`:"))
		assert.Contains(t, result, "### Example 1\n\n```rust\nlet v = vec![1];\n```")
		assert.Contains(t, result, "### Example 2\n\n```rust\nv.push(2);\n```")
	})

	t.Run("reports missing examples", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No examples found for `std::vec::Vec`.", rsdoc.FormatExamples("std::vec::Vec", nil))
	})
}
