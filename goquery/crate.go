package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rsdoc"
)

// noSubFeatures is docs.rs' text for a feature that enables nothing else.
const noSubFeatures = "This feature flag does not enable additional features."

// NoSubFeaturesDescription replaces noSubFeatures in extracted features.
const NoSubFeaturesDescription = "No specific sub-features enabled."

// ExtractCrateInfo returns the page description and top-level module names.
func (e *Extractor) ExtractCrateInfo(html string) (*rsdoc.CrateInfo, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	return &rsdoc.CrateInfo{
		Description: crateDescription(doc),
		Modules:     crateModules(doc),
	}, nil
}

func crateDescription(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if content = strings.TrimSpace(content); content != "" {
			return content
		}
	}
	return rsdoc.DefaultCrateDescription
}

func crateModules(doc *goquery.Document) []string {
	modules := []string{}
	seen := make(map[string]bool)
	firstMatch(doc.Selection,
		"#modules + .item-table a.mod",
		"#modules + .item-table .mod",
	).Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		modules = append(modules, name)
	})
	return modules
}

// ExtractFeatures returns the features listed on a docs.rs features page,
// in page order.
func (e *Extractor) ExtractFeatures(html string) ([]rsdoc.Feature, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	features := []rsdoc.Feature{}
	doc.Find("#main h3").Each(func(_ int, h3 *goquery.Selection) {
		name, ok := h3.Attr("id")
		if !ok || name == "" {
			return
		}
		features = append(features, rsdoc.Feature{
			Name:        name,
			Description: featureDescription(h3.Next()),
		})
	})
	return features, nil
}

func featureDescription(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}

	if sel.Is("ul") {
		var deps []string
		sel.Find("a").Each(func(_ int, a *goquery.Selection) {
			if dep := strings.TrimSpace(a.Text()); dep != "" {
				deps = append(deps, dep)
			}
		})
		return "Enables: " + strings.Join(deps, ", ")
	}

	desc := collapseSpace(sel.Text())
	if desc == noSubFeatures {
		return NoSubFeaturesDescription
	}
	return desc
}
