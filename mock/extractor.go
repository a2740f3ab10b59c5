package mock

import "github.com/fwojciec/rsdoc"

var _ rsdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rsdoc.Extractor.
type Extractor struct {
	ExtractCrateInfoFn func(html string) (*rsdoc.CrateInfo, error)
	ExtractFeaturesFn  func(html string) ([]rsdoc.Feature, error)
	ExtractItemFn      func(html string) (*rsdoc.ItemDefinition, error)
	ExtractExamplesFn  func(html string) ([]string, error)
	ExtractSymbolsFn   func(html, baseURL string) ([]rsdoc.Symbol, error)
}

func (e *Extractor) ExtractCrateInfo(html string) (*rsdoc.CrateInfo, error) {
	return e.ExtractCrateInfoFn(html)
}

func (e *Extractor) ExtractFeatures(html string) ([]rsdoc.Feature, error) {
	return e.ExtractFeaturesFn(html)
}

func (e *Extractor) ExtractItem(html string) (*rsdoc.ItemDefinition, error) {
	return e.ExtractItemFn(html)
}

func (e *Extractor) ExtractExamples(html string) ([]string, error) {
	return e.ExtractExamplesFn(html)
}

func (e *Extractor) ExtractSymbols(html, baseURL string) ([]rsdoc.Symbol, error) {
	return e.ExtractSymbolsFn(html, baseURL)
}
