package stylespec

import (
	"github.com/tidwall/gjson"

	"style-generator/internal/support"
)

// Attribute is one entry of an attribute catalog: a single paint, layout or
// light property as the specification declares it, before any filtering or
// normalization.
type Attribute struct {
	// Name is the hyphenated attribute identifier, e.g. "fill-color".
	Name string

	raw gjson.Result
}

// EnumValue is one allowed value of an enum-typed attribute.
type EnumValue struct {
	Value string
	Doc   string
}

// Expression holds the attribute's expression capability metadata.
type Expression struct {
	Interpolated bool
	Parameters   []string
}

// Type returns the attribute's value type ("color", "number", "enum", ...).
func (a Attribute) Type() string {
	return a.raw.Get("type").String()
}

// Doc returns the attribute's free-text documentation.
func (a Attribute) Doc() string {
	return a.raw.Get("doc").String()
}

// Default returns the attribute's default value rendered as JSON, or ""
// when no default is declared.
func (a Attribute) Default() string {
	def := a.raw.Get("default")
	if !def.Exists() {
		return ""
	}

	return def.Raw
}

// Value returns the element type of array attributes ("number", "string",
// "enum"), or "" for non-array attributes.
func (a Attribute) Value() string {
	return a.raw.Get("value").String()
}

// Minimum returns the declared minimum, or nil when absent.
func (a Attribute) Minimum() *float64 {
	return a.number("minimum")
}

// Maximum returns the declared maximum, or nil when absent.
func (a Attribute) Maximum() *float64 {
	return a.number("maximum")
}

// Units returns the attribute's unit label ("pixels", "ems", ...), or "".
func (a Attribute) Units() string {
	return a.raw.Get("units").String()
}

// Values returns the allowed values of an enum attribute in document order.
func (a Attribute) Values() []EnumValue {
	var values []EnumValue

	a.raw.Get("values").ForEach(func(key, value gjson.Result) bool {
		values = append(values, EnumValue{
			Value: key.String(),
			Doc:   value.Get("doc").String(),
		})

		return true
	})

	return values
}

// Requires returns the names of co-attributes that must be set for this
// attribute to take effect. The specification mixes two entry shapes in the
// same array: plain strings are requirements, {"!": name} objects are
// disablers and are reported by DisabledBy instead.
func (a Attribute) Requires() []string {
	var requires []string

	a.raw.Get("requires").ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			requires = append(requires, value.String())
		}

		return true
	})

	return requires
}

// DisabledBy returns the names of co-attributes that disable this attribute
// when set.
func (a Attribute) DisabledBy() []string {
	var disabledBy []string

	a.raw.Get("requires").ForEach(func(_, value gjson.Result) bool {
		if not := value.Get("!"); not.Exists() {
			disabledBy = append(disabledBy, not.String())
		}

		return true
	})

	return disabledBy
}

// Transition reports whether the attribute value animates between states.
func (a Attribute) Transition() bool {
	return a.raw.Get("transition").Bool()
}

// Expression returns the attribute's expression capability metadata.
func (a Attribute) Expression() Expression {
	raw := a.raw.Get("expression")

	var params []string

	raw.Get("parameters").ForEach(func(_, value gjson.Result) bool {
		params = append(params, value.String())
		return true
	})

	return Expression{
		Interpolated: raw.Get("interpolated").Bool(),
		Parameters:   params,
	}
}

// ZoomFunction reports whether the attribute value may be a zoom-driven
// function.
func (a Attribute) ZoomFunction() bool {
	return a.raw.Get("zoom-function").Bool()
}

// PropertyFunction reports whether the attribute value may be a
// feature-driven function.
func (a Attribute) PropertyFunction() bool {
	return a.raw.Get("property-function").Bool()
}

// Support returns the attribute's sdk-support declaration. An attribute
// without one resolves to fully unsupported.
func (a Attribute) Support() support.Declaration {
	return parseSupport(a.raw.Get("sdk-support"))
}

func (a Attribute) number(path string) *float64 {
	v := a.raw.Get(path)
	if !v.Exists() {
		return nil
	}

	n := v.Float()

	return &n
}
