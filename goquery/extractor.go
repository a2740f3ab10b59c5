// Package goquery implements rsdoc.Extractor for rustdoc and docs.rs HTML
// using CSS selectors.
//
// Every extraction rule is an independent function over the parsed
// document: a section missing from the page (or in unexpected markup)
// yields empty values for that rule only.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rsdoc"
)

// Ensure Extractor implements rsdoc.Extractor at compile time.
var _ rsdoc.Extractor = (*Extractor)(nil)

// Extractor parses rustdoc pages into rsdoc records.
type Extractor struct {
	converter rsdoc.Converter
}

// NewExtractor creates an Extractor that converts docblocks to prose with conv.
func NewExtractor(conv rsdoc.Converter) *Extractor {
	return &Extractor{converter: conv}
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// mainContent returns the rustdoc content area, or the whole document
// for pages without one.
func mainContent(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("#main-content"); main.Length() > 0 {
		return main.First()
	}
	return doc.Selection
}

// firstMatch returns the first non-empty result among selectors,
// tried in order.
func firstMatch(root *goquery.Selection, selectors ...string) *goquery.Selection {
	var sel *goquery.Selection
	for _, s := range selectors {
		if sel = root.Find(s); sel.Length() > 0 {
			return sel
		}
	}
	return sel
}

// collapseSpace replaces runs of whitespace with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// toProse converts a docblock to Markdown. Conversion failures yield "".
func (e *Extractor) toProse(sel *goquery.Selection) string {
	if e.converter == nil || sel.Length() == 0 {
		return ""
	}
	html, err := sel.Html()
	if err != nil {
		return ""
	}
	md, err := e.converter.Convert(html)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(md)
}
