package rsdoc

import (
	"fmt"
	"strings"
)

// FormatSearchResult formats a registry search page for display.
func FormatSearchResult(query string, r *CrateSearchResult) string {
	if r == nil || len(r.Crates) == 0 {
		return fmt.Sprintf("No crates found for %q.", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d crates for %q (page %d of %d):\n", r.Total, query, r.Page, r.TotalPages)
	for _, c := range r.Crates {
		desc := strings.TrimSpace(c.Description)
		if desc == "" {
			desc = DefaultCrateDescription
		}
		fmt.Fprintf(&sb, "\n- %s", c.Name)
		if c.MaxVersion != "" {
			fmt.Fprintf(&sb, " (%s)", c.MaxVersion)
		}
		fmt.Fprintf(&sb, ": %s", desc)
	}
	return sb.String()
}

// FormatCrateInfo formats a crate summary for display.
func FormatCrateInfo(crate string, info *CrateInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n", crate, info.Description)
	if len(info.Modules) > 0 {
		sb.WriteString("\n## Modules\n")
		for _, m := range info.Modules {
			fmt.Fprintf(&sb, "- %s\n", m)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatFeatures formats a feature flag list for display.
func FormatFeatures(crate string, features []Feature) string {
	if len(features) == 0 {
		return fmt.Sprintf("No features found for %s.", crate)
	}

	parts := make([]string, 0, len(features))
	for _, f := range features {
		parts = append(parts, fmt.Sprintf("- **%s**: %s", f.Name, f.Description))
	}
	return fmt.Sprintf("Features for %s:\n\n%s", crate, strings.Join(parts, "\n"))
}

// FormatItemDefinition formats an item definition as markdown.
// Sections without data are omitted.
func FormatItemDefinition(path string, d *ItemDefinition) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s `%s`\n", d.ItemType, path)

	if d.TypeAliasDefinition != nil {
		fmt.Fprintf(&sb, "\n## Type Alias\n\n```rust\n%s\n```\n", *d.TypeAliasDefinition)
	}
	if d.Definition != "" {
		fmt.Fprintf(&sb, "\n## Definition\n\n```rust\n%s\n```\n", d.Definition)
	}

	fmt.Fprintf(&sb, "\n## Documentation\n\n%s\n", d.Documentation)

	if len(d.Fields) > 0 {
		sb.WriteString("\n## Fields\n\n")
		for _, f := range d.Fields {
			fmt.Fprintf(&sb, "- `%s`", f.Name)
			if f.Type != "" {
				fmt.Fprintf(&sb, ": `%s`", f.Type)
			}
			if f.Docs != "" {
				fmt.Fprintf(&sb, " - %s", firstLine(f.Docs))
			}
			sb.WriteString("\n")
		}
	}

	if len(d.Methods) > 0 {
		sb.WriteString("\n## Methods\n\n")
		for _, m := range d.Methods {
			fmt.Fprintf(&sb, "- `%s`", m.Signature)
			if m.Docs != "" {
				fmt.Fprintf(&sb, " - %s", m.Docs)
			}
			sb.WriteString("\n")
		}
	}

	if len(d.TraitImplementations) > 0 {
		sb.WriteString("\n## Trait Implementations\n\n")
		for _, impl := range d.TraitImplementations {
			fmt.Fprintf(&sb, "- `%s`", impl.FullImpl)
			if impl.IsAuto {
				sb.WriteString(" (auto)")
			}
			sb.WriteString("\n")
		}
	}

	if len(d.Examples) > 0 {
		fmt.Fprintf(&sb, "\n%d examples available.\n", len(d.Examples))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatExample formats the n-th of total examples as a rust code block.
func FormatExample(path string, n, total int, example string) string {
	return fmt.Sprintf("Example %d of %d for `%s`:\n\n```rust\n%s\n```", n, total, path, example)
}

// FormatExamples formats every example of an item as numbered rust code blocks.
func FormatExamples(path string, examples []string) string {
	if len(examples) == 0 {
		return fmt.Sprintf("No examples found for `%s`.", path)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d examples for `%s`:\n", len(examples), path)
	for i, ex := range examples {
		fmt.Fprintf(&sb, "\n### Example %d\n\n```rust\n%s\n```\n", i+1, ex)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatSymbols formats in-crate search results.
func FormatSymbols(crate, query string, symbols []Symbol) string {
	if len(symbols) == 0 {
		return fmt.Sprintf("No items matching %q found in %s.", query, crate)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d items matching %q in %s:\n", len(symbols), query, crate)
	for _, s := range symbols {
		fmt.Fprintf(&sb, "\n- %s %s (%s)", s.Kind, s.Name, s.Path)
	}
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
