package goquery

import (
	"regexp"
	"strings"
)

var (
	commaRe      = regexp.MustCompile(`\s*,\s*`)
	arrowRe      = regexp.MustCompile(`\s*->\s*`)
	whereRe      = regexp.MustCompile(`\s+where\s+`)
	trailCommaRe = regexp.MustCompile(`,\s+\)`)
	openParenRe  = regexp.MustCompile(`\(\s+`)
)

// NormalizeSignature collapses the whitespace of a rendered method header
// into a single-line signature.
func NormalizeSignature(sig string) string {
	// A comma directly before `)` belongs to a one-element tuple.
	sig = trailCommaRe.ReplaceAllString(strings.ReplaceAll(sig, "§", ""), ")")
	sig = collapseSpace(sig)
	sig = strings.ReplaceAll(commaRe.ReplaceAllString(sig, ", "), ", )", ",)")
	sig = arrowRe.ReplaceAllString(sig, " -> ")
	sig = whereRe.ReplaceAllString(sig, " where ")
	sig = openParenRe.ReplaceAllString(sig, "(")
	sig = strings.TrimSpace(sig)
	return strings.TrimSpace(strings.TrimSuffix(sig, ","))
}
