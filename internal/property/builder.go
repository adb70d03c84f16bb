package property

import (
	"strings"

	"style-generator/internal/stylespec"
	"style-generator/internal/support"
)

// Property is the normalized record for one stylable attribute, immutable
// once built.
type Property struct {
	// Name is the camelCase identifier used in every generated artifact.
	Name string
	// ID is the original hyphenated identifier from the style spec.
	ID string
	// Doc is the documentation sub-record.
	Doc Doc
	// Type is the spec value type ("color", "number", "enum", ...).
	Type string
	// Value is the element type of array properties, "" otherwise.
	Value string
	// Default is the default value rendered as JSON, "" when absent.
	Default string
	// Transition reports whether the value animates between states.
	Transition bool
	// Expression is the expression capability metadata.
	Expression stylespec.Expression
	// Support is the resolved platform/tier support matrix.
	Support support.Matrix
	// AllowedFunctionTypes lists the dynamic function categories the
	// property accepts. Empty (but never nil) when none are allowed.
	AllowedFunctionTypes []FunctionType
	// Image marks pattern/image attributes, which need sprite resolution
	// in the native bridges.
	Image bool
	// Translate marks translate attributes, which take point offsets.
	Translate bool
}

// Doc is the documentation sub-record of a property.
type Doc struct {
	// Description is the free text with hyphenated tokens camelCased.
	Description string
	// Requires lists co-attributes that must be set, camelCased.
	Requires []string
	// DisabledBy lists co-attributes that disable this one, camelCased.
	DisabledBy []string
	// Values lists the allowed values of enum properties, in spec order.
	Values []stylespec.EnumValue
	// Minimum and Maximum bound numeric properties; nil when unbounded.
	Minimum *float64
	Maximum *float64
	// Units is the unit label, "" when dimensionless.
	Units string
	// Default mirrors Property.Default for the documentation builders.
	Default string
}

// Build assembles the property record for one attribute. It is a pure
// function of its inputs; the attribute is assumed to have already passed
// the basic-support filter.
func Build(attr stylespec.Attribute, kind CatalogKind, targets support.Targets) Property {
	lower := strings.ToLower(attr.Name)

	return Property{
		Name:                 CamelCase(attr.Name),
		ID:                   attr.Name,
		Doc:                  buildDoc(attr),
		Type:                 attr.Type(),
		Value:                attr.Value(),
		Default:              attr.Default(),
		Transition:           attr.Transition(),
		Expression:           attr.Expression(),
		Support:              support.Resolve(attr.Support(), targets),
		AllowedFunctionTypes: allowedFunctionTypes(attr, kind),
		Image:                strings.Contains(lower, "pattern") || strings.Contains(lower, "image"),
		Translate:            strings.Contains(lower, "translate"),
	}
}

func buildDoc(attr stylespec.Attribute) Doc {
	return Doc{
		Description: FormatDescription(attr.Doc()),
		Requires:    camelCaseAll(attr.Requires()),
		DisabledBy:  camelCaseAll(attr.DisabledBy()),
		Values:      attr.Values(),
		Minimum:     attr.Minimum(),
		Maximum:     attr.Maximum(),
		Units:       attr.Units(),
		Default:     attr.Default(),
	}
}

// allowedFunctionTypes derives the function-type set for an attribute.
// Light properties support no dynamic styling at all; everything else
// derives from the attribute flags unless an override table pins it.
func allowedFunctionTypes(attr stylespec.Attribute, kind CatalogKind) []FunctionType {
	if kind == CatalogLight {
		return []FunctionType{}
	}

	if forced, ok := forcedFunctionTypes(kind, attr.Name); ok {
		return forced
	}

	switch {
	case attr.PropertyFunction():
		return []FunctionType{FunctionCamera, FunctionSource, FunctionComposite}
	case attr.ZoomFunction():
		return []FunctionType{FunctionCamera}
	default:
		return []FunctionType{}
	}
}

func camelCaseAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = CamelCase(name)
	}

	return out
}
