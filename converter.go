package rsdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment (e.g., a rustdoc docblock)
	// into Markdown prose.
	Convert(html string) (string, error)
}
