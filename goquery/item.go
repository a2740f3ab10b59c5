package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rsdoc"
	"golang.org/x/net/html"
)

// typeAliasRe matches the `pub type Name` prefix of an alias declaration.
var typeAliasRe = regexp.MustCompile(`^(?:pub(?:\([^)]*\))?\s+)?type\s+[A-Za-z_][A-Za-z0-9_]*`)

// inherentImplRe matches `impl<..> Type<..>` headers without a trait.
var inherentImplRe = regexp.MustCompile(`^(?:unsafe\s+)?impl(?:<[^>]*>)?\s+\S+$`)

// traitForRe matches the `for` keyword of a trait impl, not `for<'a>` bounds.
var traitForRe = regexp.MustCompile(`\bfor\s`)

// dedupSuffixRe matches the numeric suffix rustdoc appends to repeated ids.
var dedupSuffixRe = regexp.MustCompile(`-\d+$`)

// ExtractItem parses an item page into an ItemDefinition.
func (e *Extractor) ExtractItem(html string) (*rsdoc.ItemDefinition, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	root := mainContent(doc)

	def := rsdoc.NewItemDefinition()
	def.ItemType = itemType(root)
	def.Definition, def.TypeAliasDefinition = declarations(root)
	def.Fields = e.fields(root)
	def.Methods = methods(root)
	def.TraitImplementations = traitImpls(root)
	def.Examples = examples(root)
	if docs := e.documentation(root); docs != "" {
		def.Documentation = docs
	}
	def.Normalize()
	return def, nil
}

// ExtractExamples returns the example code blocks of an item page.
func (e *Extractor) ExtractExamples(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	return examples(mainContent(doc)), nil
}

// itemType reads the kind label ("Struct", "Type Alias") that leads the
// page heading.
func itemType(root *goquery.Selection) string {
	if label := leadingText(root.Find(".main-heading h1, h1.fqn").First()); label != "" {
		return label
	}
	if label := leadingText(root.Find(".main-heading span").First()); label != "" {
		return label
	}
	return rsdoc.DefaultItemType
}

// leadingText returns the first non-blank text directly inside sel, or
// inside its first child element for older markup.
func leadingText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	for n := sel.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.TextNode {
			if text := collapseSpace(n.Data); text != "" {
				return text
			}
			continue
		}
		if n.Type == html.ElementNode {
			return leadingText(goquery.NewDocumentFromNode(n).Selection)
		}
	}
	return ""
}

// declarations returns the primary declaration and, for type alias pages
// carrying both the alias and the aliased type, the alias declaration.
func declarations(root *goquery.Selection) (string, *string) {
	var decls []string
	root.Find("pre.item-decl, .item-decl pre").Each(func(_ int, sel *goquery.Selection) {
		decls = append(decls, strings.TrimSpace(sel.Text()))
	})

	switch {
	case len(decls) == 0:
		return "", nil
	case len(decls) >= 2 && isTypeAlias(decls[0]):
		alias := decls[0]
		return decls[1], &alias
	default:
		return decls[0], nil
	}
}

// isTypeAlias reports whether decl is `type Name<..> = ..`. Generic
// parameters may carry defaults, so the `=` must sit outside the brackets.
func isTypeAlias(decl string) bool {
	loc := typeAliasRe.FindStringIndex(decl)
	if loc == nil {
		return false
	}
	depth := 0
	rest := decl[loc[1]:]
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; {
		case c == '<':
			depth++
		case c == '>' && (i == 0 || rest[i-1] != '-'):
			depth--
		case c == '=' && depth == 0:
			return true
		case depth == 0 && c != ' ' && c != '\t' && c != '\n':
			return false
		}
	}
	return false
}

// fields collects struct fields or enum variants. Pages without a fields
// or variants section have none.
func (e *Extractor) fields(root *goquery.Selection) []rsdoc.Field {
	fields := []rsdoc.Field{}
	if root.Find("#fields").Length() > 0 {
		fields = append(fields, e.fieldBlocks(root, "structfield.")...)
	}
	if root.Find("#variants").Length() > 0 {
		fields = append(fields, e.fieldBlocks(root, "variant.")...)
	}
	return fields
}

func (e *Extractor) fieldBlocks(root *goquery.Selection, prefix string) []rsdoc.Field {
	var fields []rsdoc.Field
	root.Find(`[id^="` + prefix + `"]`).Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		name := strings.TrimPrefix(id, prefix)
		if name == "" || strings.Contains(name, ".") {
			return
		}

		code := strings.TrimSpace(sel.Find("code").First().Text())
		if code == "" {
			code = strings.TrimSpace(codeHeader(sel))
		}
		typ := strings.TrimSpace(strings.TrimPrefix(code, name+":"))

		fields = append(fields, rsdoc.Field{
			Name: name,
			Type: collapseSpace(typ),
			Docs: e.toProse(followingDocblock(sel)),
		})
	})
	return fields
}

// methods collects every method block on the page, inherent and trait.
func methods(root *goquery.Selection) []rsdoc.Method {
	methods := []rsdoc.Method{}
	root.Find(`[id^="method."], [id^="tymethod."]`).Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		name := strings.TrimPrefix(strings.TrimPrefix(id, "tymethod."), "method.")
		name = dedupSuffixRe.ReplaceAllString(name, "")
		if name == "" {
			return
		}

		methods = append(methods, rsdoc.Method{
			Name:      name,
			Signature: NormalizeSignature(codeHeader(sel)),
			Docs:      firstLine(followingDocblock(sel)),
		})
	})
	return methods
}

// traitImpls collects impl blocks that implement a trait for the item.
func traitImpls(root *goquery.Selection) []rsdoc.TraitImpl {
	impls := []rsdoc.TraitImpl{}
	root.Find(".impl").Each(func(_ int, sel *goquery.Selection) {
		header := NormalizeSignature(codeHeader(sel))
		if header == "" || inherentImplRe.MatchString(header) || !traitForRe.MatchString(header) {
			return
		}
		impls = append(impls, rsdoc.TraitImpl{
			FullImpl: header,
			IsAuto:   isAutoImpl(sel),
		})
	})
	return impls
}

// isAutoImpl reports whether sel sits in the synthetic (auto trait) or
// blanket implementation lists.
func isAutoImpl(sel *goquery.Selection) bool {
	auto := false
	sel.Parents().EachWithBreak(func(_ int, p *goquery.Selection) bool {
		id, _ := p.Attr("id")
		if strings.Contains(id, "synthetic") || strings.Contains(id, "blanket") {
			auto = true
			return false
		}
		return true
	})
	return auto
}

// examples returns the trimmed text of every example code block.
func examples(root *goquery.Selection) []string {
	examples := []string{}
	root.Find(".example-wrap pre.rust").Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass("item-decl") {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			examples = append(examples, text)
		}
	})
	return examples
}

// documentation converts the top-level docblock to Markdown.
func (e *Extractor) documentation(root *goquery.Selection) string {
	block := root.Find("details.top-doc > .docblock").First()
	if block.Length() == 0 {
		block = root.Find(".docblock").First()
	}
	return e.toProse(block)
}

// followingDocblock finds the docblock describing a field or method
// header: its next sibling, or the body of the enclosing <details>.
func followingDocblock(sel *goquery.Selection) *goquery.Selection {
	if next := sel.Next(); next.HasClass("docblock") {
		return next
	}
	if summary := sel.Closest("summary"); summary.Length() > 0 {
		return summary.Parent().ChildrenFiltered(".docblock").First()
	}
	return sel.Next().Filter(".docblock")
}

// headerText returns the text of a header block without its anchor and
// source links. Where clauses, rendered as separate blocks, are kept
// apart from the preceding text.
func headerText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	clone := sel.Clone()
	clone.Find("a.anchor, a.src, .rightside").Remove()
	clone.Find(".where").Each(func(_ int, w *goquery.Selection) {
		n := w.Nodes[0]
		n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: " "}, n)
	})
	return strings.ReplaceAll(clone.Text(), "§", "")
}

// codeHeader returns the text of the block's code header.
func codeHeader(sel *goquery.Selection) string {
	if header := sel.Find(".code-header").First(); header.Length() > 0 {
		return headerText(header)
	}
	return headerText(sel)
}

// firstLine returns the first non-blank line of a docblock.
func firstLine(block *goquery.Selection) string {
	if block.Length() == 0 {
		return ""
	}
	text := block.Text()
	if first := block.Children().First(); first.Length() > 0 {
		text = first.Text()
	}
	for _, line := range strings.Split(text, "\n") {
		if line = collapseSpace(line); line != "" {
			return line
		}
	}
	return ""
}
