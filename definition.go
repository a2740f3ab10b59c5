package rsdoc

// DefaultDocumentation is used when an item page has no prose documentation.
const DefaultDocumentation = "No documentation found."

// DefaultItemType is used when the item kind label cannot be found.
const DefaultItemType = "Unknown"

// Field is a struct field or enum variant.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Docs string `json:"docs"`
}

// Method is a method with a normalized signature and a one-line doc preview.
type Method struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Docs      string `json:"docs"`
}

// TraitImpl is a trait implementation header. IsAuto marks synthetic
// (auto trait) and blanket implementations.
type TraitImpl struct {
	FullImpl string `json:"fullImpl"`
	IsAuto   bool   `json:"isAuto"`
}

// ItemDefinition is the structured content of an item page.
//
// List fields are never nil. TypeAliasDefinition is only set on type alias
// pages that expose both the alias and the aliased type's declaration.
type ItemDefinition struct {
	ItemType             string      `json:"itemType"`
	Definition           string      `json:"definition"`
	Fields               []Field     `json:"fields"`
	Methods              []Method    `json:"methods"`
	TraitImplementations []TraitImpl `json:"traitImplementations"`
	TypeAliasDefinition  *string     `json:"typeAliasDefinition,omitempty"`
	Documentation        string      `json:"documentation"`
	Examples             []string    `json:"examples"`
}

// NewItemDefinition returns a definition populated with defaults.
func NewItemDefinition() *ItemDefinition {
	return &ItemDefinition{
		ItemType:             DefaultItemType,
		Fields:               []Field{},
		Methods:              []Method{},
		TraitImplementations: []TraitImpl{},
		Documentation:        DefaultDocumentation,
		Examples:             []string{},
	}
}

// Normalize replaces nil lists and empty labels with their defaults.
func (d *ItemDefinition) Normalize() {
	if d.ItemType == "" {
		d.ItemType = DefaultItemType
	}
	if d.Documentation == "" {
		d.Documentation = DefaultDocumentation
	}
	if d.Fields == nil {
		d.Fields = []Field{}
	}
	if d.Methods == nil {
		d.Methods = []Method{}
	}
	if d.TraitImplementations == nil {
		d.TraitImplementations = []TraitImpl{}
	}
	if d.Examples == nil {
		d.Examples = []string{}
	}
}

// SelectExample returns the n-th (1-based) of an item's examples.
func SelectExample(path string, examples []string, n int) (string, error) {
	if n < 1 {
		return "", Errorf(EINVALID, "example number must be at least 1, got %d", n)
	}
	if n > len(examples) {
		return "", Errorf(EINVALID, "example %d out of range: `%s` has %d examples", n, path, len(examples))
	}
	return examples[n-1], nil
}
