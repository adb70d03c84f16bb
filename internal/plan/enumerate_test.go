package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-generator/internal/property"
	"style-generator/internal/stylespec"
)

const enumerateSpec = `{
  "layer": {
    "type": {
      "values": {
        "fill": {
          "doc": "A filled polygon.",
          "sdk-support": {
            "basic functionality": {"android": "2.0.1", "ios": "2.0.0"}
          }
        },
        "line": {
          "doc": "A stroked line.",
          "sdk-support": {
            "basic functionality": {"android": "2.0.1", "ios": "2.0.0"}
          }
        },
        "sky": {
          "doc": "A spherical dome around the map.",
          "sdk-support": {
            "basic functionality": {"js": "2.0.0"}
          }
        }
      }
    }
  },
  "paint_fill": {
    "fill-color": {
      "type": "color",
      "default": "#000000",
      "doc": "The color of the filled part of this layer.",
      "zoom-function": true,
      "property-function": true,
      "sdk-support": {
        "basic functionality": {"android": "2.0.1", "ios": "2.0.0"},
        "data-driven styling": {"android": "5.0.0", "ios": "3.5.0"}
      }
    },
    "fill-opacity": {
      "type": "number",
      "default": 1,
      "doc": "The opacity of the entire fill layer.",
      "sdk-support": {
        "basic functionality": {"android": "2.0.1", "ios": "2.0.0"}
      }
    }
  },
  "layout_fill": {
    "fill-sort-key": {
      "type": "number",
      "doc": "Sorts features in ascending order.",
      "sdk-support": {
        "basic functionality": {"android": "7.2.0", "ios": "4.2.0"}
      }
    }
  },
  "paint_line": {
    "line-gradient": {
      "type": "color",
      "doc": "Defines a gradient with which to color a line feature.",
      "sdk-support": {
        "basic functionality": {"js": "0.45.0"}
      }
    }
  },
  "layout_line": {},
  "light": {
    "anchor": {
      "type": "enum",
      "default": "viewport",
      "doc": "Whether extruded geometries are lit relative to the map or viewport.",
      "zoom-function": true,
      "sdk-support": {
        "basic functionality": {"android": "5.1.0", "ios": "3.6.0"}
      }
    },
    "color": {
      "type": "color",
      "default": "#ffffff",
      "doc": "Color tint for lighting extruded geometries.",
      "sdk-support": {
        "basic functionality": {"android": "5.1.0", "ios": "3.6.0"}
      }
    }
  }
}`

func enumerateTestPlan(t *testing.T) *StylePlan {
	t.Helper()

	doc, err := stylespec.Parse([]byte(enumerateSpec))
	require.NoError(t, err)

	return Enumerate(doc, DefaultConfig())
}

func TestEnumerateFiltersUnsupportedLayers(t *testing.T) {
	p := enumerateTestPlan(t)

	var names []string
	for _, l := range p.Layers {
		names = append(names, l.Name)
	}

	// sky declares js-only support and must not appear.
	assert.Equal(t, []string{"fill", "line", "light"}, names)
}

func TestEnumerateLightIsAlwaysLast(t *testing.T) {
	p := enumerateTestPlan(t)

	require.NotEmpty(t, p.Layers)
	last := p.Layers[len(p.Layers)-1]
	assert.Equal(t, LightLayerName, last.Name)
	assert.True(t, last.Light)

	for _, l := range p.Layers[:len(p.Layers)-1] {
		assert.False(t, l.Light)
	}
}

func TestEnumerateLayoutBeforePaint(t *testing.T) {
	p := enumerateTestPlan(t)

	fill := p.Layers[0]
	require.Equal(t, "fill", fill.Name)
	require.Len(t, fill.Properties, 3)

	assert.Equal(t, "fillSortKey", fill.Properties[0].Name)
	assert.Equal(t, "fillColor", fill.Properties[1].Name)
	assert.Equal(t, "fillOpacity", fill.Properties[2].Name)
}

func TestEnumerateAttributeScopedFilter(t *testing.T) {
	p := enumerateTestPlan(t)

	// line survives the layer-level filter even though its only paint
	// attribute is js-only and its layout catalog is empty.
	line := p.Layers[1]
	require.Equal(t, "line", line.Name)
	assert.Empty(t, line.Properties)

	var found bool
	for _, n := range p.Notices.Warnings {
		if n.Layer == "line" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning notice about the empty line layer")
}

func TestEnumerateLightProperties(t *testing.T) {
	p := enumerateTestPlan(t)

	light := p.Layers[len(p.Layers)-1]
	require.Len(t, light.Properties, 2)

	assert.Equal(t, "anchor", light.Properties[0].Name)
	assert.Equal(t, "color", light.Properties[1].Name)

	for _, prop := range light.Properties {
		assert.Equal(t, []property.FunctionType{}, prop.AllowedFunctionTypes, prop.Name)
	}
}

func TestEnumerateSkipNotices(t *testing.T) {
	p := enumerateTestPlan(t)

	var skipped []string
	for _, n := range p.Notices.Infos {
		if n.Attribute != "" {
			skipped = append(skipped, n.Layer+"/"+n.Attribute)
		} else {
			skipped = append(skipped, n.Layer)
		}
	}

	assert.Contains(t, skipped, "sky")
	assert.Contains(t, skipped, "line/line-gradient")
}

func TestEnumerateIsIdempotent(t *testing.T) {
	doc, err := stylespec.Parse([]byte(enumerateSpec))
	require.NoError(t, err)

	a := Enumerate(doc, DefaultConfig())
	b := Enumerate(doc, DefaultConfig())

	assert.Equal(t, a, b)
}
