package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rsdoc"
)

// ExtractSymbols parses a rustdoc all-items listing. Links are resolved
// against baseURL, the crate documentation root.
func (e *Extractor) ExtractSymbols(html, baseURL string) ([]rsdoc.Symbol, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.EINVALID, "invalid base URL: %v", err)
	}

	symbols := []rsdoc.Symbol{}
	mainContent(doc).Find("h3, h2").Each(func(_ int, heading *goquery.Selection) {
		list := heading.Next()
		if !list.Is("ul.all-items") {
			return
		}
		kind := singularKind(headingText(heading))
		list.Find("li > a").Each(func(_ int, a *goquery.Selection) {
			name := strings.TrimSpace(a.Text())
			href, ok := a.Attr("href")
			if name == "" || !ok {
				return
			}
			symbols = append(symbols, rsdoc.Symbol{
				Name: name,
				Kind: kind,
				Path: href,
				URL:  resolveURL(base, href),
			})
		})
	})
	return symbols, nil
}

func headingText(heading *goquery.Selection) string {
	clone := heading.Clone()
	clone.Find("a.anchor").Remove()
	return collapseSpace(strings.ReplaceAll(clone.Text(), "§", ""))
}

// singularKind turns a section heading into an item kind:
// "Structs" becomes "Struct", "Type Aliases" becomes "Type Alias".
func singularKind(heading string) string {
	switch {
	case strings.HasSuffix(heading, "ses"):
		return strings.TrimSuffix(heading, "es")
	case strings.HasSuffix(heading, "s"):
		return strings.TrimSuffix(heading, "s")
	default:
		return heading
	}
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
