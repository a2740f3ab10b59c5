// Package htmltomarkdown converts rustdoc HTML fragments to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rsdoc"
)

// Ensure Converter implements rsdoc.Converter at compile time.
var _ rsdoc.Converter = (*Converter)(nil)

// rustdoc chrome that carries no prose: heading anchors ("§"),
// hover tooltips and copy buttons on examples.
const chromeSelector = "a.doc-anchor, a.anchor, .tooltip, .button-holder, button"

// Converter wraps html-to-markdown to convert rustdoc docblocks to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a docblock into Markdown. Rust code blocks are
// fenced with a rust language hint.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", rsdoc.Errorf(rsdoc.EINVALID, "empty HTML input")
	}

	cleaned, err := clean(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

func clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", rsdoc.Errorf(rsdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(chromeSelector).Remove()
	doc.Find("pre.rust").Each(func(_ int, pre *goquery.Selection) {
		code := pre.ChildrenFiltered("code")
		if code.Length() == 0 {
			pre.SetAttr("class", "language-rust")
			return
		}
		code.SetAttr("class", "language-rust")
	})

	return doc.Find("body").Html()
}
