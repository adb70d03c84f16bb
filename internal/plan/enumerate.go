package plan

import (
	"fmt"

	"style-generator/internal/property"
	"style-generator/internal/stylespec"
	"style-generator/internal/support"
)

// Enumerate walks the style spec's layer-type and light catalogs and builds
// the StylePlan. It is deterministic: the same document and config always
// produce structurally identical output.
func Enumerate(doc *stylespec.Document, cfg Config) *StylePlan {
	p := &StylePlan{}

	for _, lt := range doc.LayerTypes() {
		matrix := support.Resolve(lt.Support, cfg.Targets)
		if !matrix.Basic.Both() {
			p.Notices.AddInfo(skipMessage(matrix.Basic), lt.Name, "")
			continue
		}

		layer := Layer{Name: lt.Name}
		layer.Properties = append(layer.Properties,
			p.buildProperties(doc.LayoutAttributes(lt.Name), lt.Name, property.CatalogLayout, cfg)...)
		layer.Properties = append(layer.Properties,
			p.buildProperties(doc.PaintAttributes(lt.Name), lt.Name, property.CatalogPaint, cfg)...)

		if len(layer.Properties) == 0 {
			p.Notices.AddWarning("layer retained with no supported attributes", lt.Name, "")
		}

		p.Layers = append(p.Layers, layer)
	}

	p.Layers = append(p.Layers, Layer{
		Name:       LightLayerName,
		Properties: p.buildProperties(doc.LightAttributes(), LightLayerName, property.CatalogLight, cfg),
		Light:      true,
	})

	return p
}

// buildProperties filters one attribute catalog to the attributes with
// basic support on both platforms and builds a property record for each
// survivor, preserving catalog order.
func (p *StylePlan) buildProperties(attrs []stylespec.Attribute, layerName string, kind property.CatalogKind, cfg Config) []property.Property {
	var props []property.Property

	for _, attr := range attrs {
		matrix := support.Resolve(attr.Support(), cfg.Targets)
		if !matrix.Basic.Both() {
			p.Notices.AddInfo(skipMessage(matrix.Basic), layerName, attr.Name)
			continue
		}

		props = append(props, property.Build(attr, kind, cfg.Targets))
	}

	return props
}

func skipMessage(basic support.Flags) string {
	switch {
	case basic.Android:
		return fmt.Sprintf("skipped, no basic support on %s", support.PlatformIOS)
	case basic.IOS:
		return fmt.Sprintf("skipped, no basic support on %s", support.PlatformAndroid)
	default:
		return "skipped, no basic support on either platform"
	}
}
