package rsdoc

// Extractor turns rustdoc HTML documents into typed records.
// Each method is a pure function of its input; a missing section on an
// otherwise well-formed page yields empty values rather than an error.
type Extractor interface {
	// ExtractCrateInfo parses a crate's root index page.
	ExtractCrateInfo(html string) (*CrateInfo, error)

	// ExtractFeatures parses a docs.rs feature flags page.
	ExtractFeatures(html string) ([]Feature, error)

	// ExtractItem parses an item page into a full definition record.
	ExtractItem(html string) (*ItemDefinition, error)

	// ExtractExamples returns only the code examples of an item page.
	ExtractExamples(html string) ([]string, error)

	// ExtractSymbols parses a crate's all-items listing. Relative links
	// are resolved against baseURL.
	ExtractSymbols(html string, baseURL string) ([]Symbol, error)
}
