package stylespec

import (
	"github.com/tidwall/gjson"

	"style-generator/internal/support"
)

// Document is the parsed style spec. All accessors are read-only and
// preserve the document's declared key order.
type Document struct {
	raw []byte
}

// LayerType is one entry of the specification's layer-type catalog
// (layer.type.values).
type LayerType struct {
	// Name is the layer type identifier, e.g. "fill", "line", "symbol".
	Name string
	// Support is the layer-level sdk-support declaration.
	Support support.Declaration
}

// LayerTypes returns the layer-type catalog in document order.
func (d *Document) LayerTypes() []LayerType {
	var types []LayerType

	d.get("layer.type.values").ForEach(func(key, value gjson.Result) bool {
		types = append(types, LayerType{
			Name:    key.String(),
			Support: parseSupport(value.Get("sdk-support")),
		})

		return true
	})

	return types
}

// PaintAttributes returns the paint attribute catalog of a layer type in
// document order. Unknown layer types yield an empty catalog.
func (d *Document) PaintAttributes(layerType string) []Attribute {
	return d.attributes("paint_" + layerType)
}

// LayoutAttributes returns the layout attribute catalog of a layer type in
// document order.
func (d *Document) LayoutAttributes(layerType string) []Attribute {
	return d.attributes("layout_" + layerType)
}

// LightAttributes returns the ambient light attribute catalog.
func (d *Document) LightAttributes() []Attribute {
	return d.attributes("light")
}

func (d *Document) attributes(catalog string) []Attribute {
	var attrs []Attribute

	d.get(catalog).ForEach(func(key, value gjson.Result) bool {
		attrs = append(attrs, Attribute{Name: key.String(), raw: value})
		return true
	})

	return attrs
}

func (d *Document) get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// parseSupport converts a raw sdk-support block into a support.Declaration.
// Absent blocks, tiers or platforms come back as empty strings, which the
// resolver treats as unsupported.
func parseSupport(raw gjson.Result) support.Declaration {
	return support.Declaration{
		Basic:      parseVersions(raw.Get("basic functionality")),
		DataDriven: parseVersions(raw.Get("data-driven styling")),
	}
}

func parseVersions(raw gjson.Result) support.Versions {
	return support.Versions{
		Android: raw.Get("android").String(),
		IOS:     raw.Get("ios").String(),
	}
}
