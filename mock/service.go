package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.DocService = (*DocService)(nil)

// DocService is a mock implementation of rsdoc.DocService.
type DocService struct {
	SearchCratesFn   func(ctx context.Context, query string, page int) (*rsdoc.CrateSearchResult, error)
	CrateInfoFn      func(ctx context.Context, crate string) (*rsdoc.CrateInfo, error)
	CrateFeaturesFn  func(ctx context.Context, crate string) ([]rsdoc.Feature, error)
	ItemDefinitionFn func(ctx context.Context, itemPath string) (*rsdoc.ItemDefinition, error)
	ItemExamplesFn   func(ctx context.Context, itemPath string) ([]string, error)
	ItemExampleFn    func(ctx context.Context, itemPath string, n int) (string, error)
	SearchInCrateFn  func(ctx context.Context, crate, query string) ([]rsdoc.Symbol, error)
}

func (s *DocService) SearchCrates(ctx context.Context, query string, page int) (*rsdoc.CrateSearchResult, error) {
	return s.SearchCratesFn(ctx, query, page)
}

func (s *DocService) CrateInfo(ctx context.Context, crate string) (*rsdoc.CrateInfo, error) {
	return s.CrateInfoFn(ctx, crate)
}

func (s *DocService) CrateFeatures(ctx context.Context, crate string) ([]rsdoc.Feature, error) {
	return s.CrateFeaturesFn(ctx, crate)
}

func (s *DocService) ItemDefinition(ctx context.Context, itemPath string) (*rsdoc.ItemDefinition, error) {
	return s.ItemDefinitionFn(ctx, itemPath)
}

func (s *DocService) ItemExamples(ctx context.Context, itemPath string) ([]string, error) {
	return s.ItemExamplesFn(ctx, itemPath)
}

func (s *DocService) ItemExample(ctx context.Context, itemPath string, n int) (string, error) {
	return s.ItemExampleFn(ctx, itemPath, n)
}

func (s *DocService) SearchInCrate(ctx context.Context, crate, query string) ([]rsdoc.Symbol, error) {
	return s.SearchInCrateFn(ctx, crate, query)
}
