package rsdoc

import (
	"net/url"
	"strings"
)

// User agents sent to documentation hosts. docs.rs sits behind
// infrastructure that rejects automated-looking agents, so it receives a
// browser-like string; the other hosts get a descriptive tool identifier.
const (
	ToolUserAgent    = "rsdoc/" + Version + " (+https://github.com/fwojciec/rsdoc)"
	BrowserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Hosts holds the base URLs of the documentation hosts.
type Hosts struct {
	StdDocs  string // standard library documentation, e.g. https://doc.rust-lang.org
	DocsRS   string // third-party crate documentation, e.g. https://docs.rs
	CratesIO string // crate registry API, e.g. https://crates.io
}

// DefaultHosts returns the public documentation hosts.
func DefaultHosts() Hosts {
	return Hosts{
		StdDocs:  "https://doc.rust-lang.org",
		DocsRS:   "https://docs.rs",
		CratesIO: "https://crates.io",
	}
}

// CrateRoot returns the documentation root of a crate, with a trailing slash.
// Standard library crates live at <StdDocs>/<crate>/; third-party crates at
// <DocsRS>/<crate>/latest/<crate_ident>/.
func (h Hosts) CrateRoot(crate string) string {
	if IsStdCrate(crate) {
		return strings.TrimRight(h.StdDocs, "/") + "/" + crate + "/"
	}
	return strings.TrimRight(h.DocsRS, "/") + "/" + crate + "/latest/" + NormalizeCrateName(crate) + "/"
}

// AllItemsURL returns the URL of a crate's all-items listing.
func (h Hosts) AllItemsURL(crate string) string {
	return h.CrateRoot(crate) + "all.html"
}

// CrateIndexURL returns the URL of a crate's root index page.
func (h Hosts) CrateIndexURL(crate string) string {
	if IsStdCrate(crate) {
		return h.CrateRoot(crate) + "index.html"
	}
	return h.CrateRoot(crate)
}

// FeaturesURL returns the URL of a crate's docs.rs feature flags page.
func (h Hosts) FeaturesURL(crate string) string {
	return strings.TrimRight(h.DocsRS, "/") + "/crate/" + crate + "/latest/features"
}

// HeadersFor returns the request headers for a URL on one of the hosts.
func (h Hosts) HeadersFor(rawURL string) map[string]string {
	ua := ToolUserAgent
	if sameHost(rawURL, h.DocsRS) {
		ua = BrowserUserAgent
	}
	return map[string]string{"User-Agent": ua}
}

func sameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host == ub.Host
}
