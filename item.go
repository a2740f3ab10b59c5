package rsdoc

import "strings"

// stdCrates are the pseudo-crates documented on doc.rust-lang.org.
var stdCrates = map[string]bool{
	"std":        true,
	"core":       true,
	"alloc":      true,
	"proc_macro": true,
	"test":       true,
}

// IsStdCrate reports whether name is a standard-library pseudo-crate.
func IsStdCrate(name string) bool {
	return stdCrates[name]
}

// NormalizeCrateName rewrites a crate name into the identifier form used
// in documentation paths (hyphens become underscores).
func NormalizeCrateName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// ItemPath is a parsed item path such as tokio::sync::Mutex.
type ItemPath struct {
	Crate   string
	Modules []string
	Name    string
}

// ParseItemPath splits s on "::". It requires at least a crate and an
// item name and rejects empty segments.
func ParseItemPath(s string) (ItemPath, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "::")
	if len(parts) < 2 {
		return ItemPath{}, Errorf(EINVALID, "item path %q must have at least a crate and an item name", s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return ItemPath{}, Errorf(EINVALID, "item path %q has an empty segment", s)
		}
	}
	return ItemPath{
		Crate:   parts[0],
		Modules: parts[1 : len(parts)-1],
		Name:    parts[len(parts)-1],
	}, nil
}

// String returns the path in its "::"-separated form.
func (p ItemPath) String() string {
	parts := make([]string, 0, len(p.Modules)+2)
	parts = append(parts, p.Crate)
	parts = append(parts, p.Modules...)
	parts = append(parts, p.Name)
	return strings.Join(parts, "::")
}

// Local returns the path relative to the crate, e.g. sync::Mutex.
func (p ItemPath) Local() string {
	return strings.Join(append(append([]string{}, p.Modules...), p.Name), "::")
}

// IsStd reports whether the path points into the standard library.
func (p ItemPath) IsStd() bool {
	return IsStdCrate(p.Crate)
}
