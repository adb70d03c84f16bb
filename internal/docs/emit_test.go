package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-generator/internal/plan"
	"style-generator/internal/stylespec"
)

const docsSpec = `{
  "layer": {
    "type": {
      "values": {
        "circle": {
          "doc": "A filled circle.",
          "sdk-support": {
            "basic functionality": {"android": "2.0.1", "ios": "2.0.0"}
          }
        }
      }
    }
  },
  "paint_circle": {
    "circle-radius": {
      "type": "number",
      "default": 5,
      "minimum": 0,
      "units": "pixels",
      "doc": "Circle radius.",
      "transition": true,
      "zoom-function": true,
      "property-function": true,
      "expression": {"interpolated": true, "parameters": ["zoom", "feature"]},
      "sdk-support": {
        "basic functionality": {"android": "2.0.1", "ios": "2.0.0"},
        "data-driven styling": {"android": "5.0.0", "ios": "3.5.0"}
      }
    },
    "circle-color": {
      "type": "color",
      "default": "#000000",
      "doc": "The fill color of the circle. Disabled by circle-pattern.",
      "requires": [{"!": "circle-pattern"}],
      "sdk-support": {
        "basic functionality": {"android": "2.0.1", "ios": "2.0.0"}
      }
    }
  },
  "layout_circle": {},
  "light": {
    "intensity": {
      "type": "number",
      "default": 0.5,
      "minimum": 0,
      "maximum": 1,
      "doc": "Intensity of lighting.",
      "sdk-support": {
        "basic functionality": {"android": "5.1.0", "ios": "3.6.0"}
      }
    }
  }
}`

func docsTestPlan(t *testing.T) *plan.StylePlan {
	t.Helper()

	doc, err := stylespec.Parse([]byte(docsSpec))
	require.NoError(t, err)

	return plan.Enumerate(doc, plan.DefaultConfig())
}

func TestBuildModelOrder(t *testing.T) {
	model := BuildModel(docsTestPlan(t))

	require.Len(t, model, 2)
	assert.Equal(t, "circle", model[0].Name)
	assert.Equal(t, "light", model[1].Name)
	assert.True(t, model[1].Light)

	require.Len(t, model[0].Properties, 2)
	assert.Equal(t, "circleRadius", model[0].Properties[0].Name)
	assert.Equal(t, "circleColor", model[0].Properties[1].Name)
}

func TestBuildModelPropertyDoc(t *testing.T) {
	model := BuildModel(docsTestPlan(t))

	radius := model[0].Properties[0]
	assert.Equal(t, "circle-radius", radius.ID)
	assert.Equal(t, "number", radius.Type)
	assert.Equal(t, json.RawMessage("5"), radius.Default)
	assert.Equal(t, "pixels", radius.Units)
	assert.True(t, radius.Transition)
	assert.True(t, radius.Expression.Interpolated)
	assert.True(t, radius.Support.DataDriven.Android)
	assert.Equal(t, []string{"camera", "source", "composite"}, radius.AllowedFunctionTypes)

	color := model[0].Properties[1]
	assert.Equal(t, []string{"circlePattern"}, color.DisabledBy)
	assert.Equal(t, "The fill color of the circle. Disabled by circlePattern.", color.Description)
	assert.False(t, color.Support.DataDriven.Android)
	assert.Empty(t, color.AllowedFunctionTypes)
}

func TestEmitWritesJSONThenMarkdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	require.NoError(t, Emit(docsTestPlan(t), dir))

	data, err := os.ReadFile(filepath.Join(dir, "docs.json"))
	require.NoError(t, err)

	var decoded Model
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "circle", decoded[0].Name)
	assert.Equal(t, "light", decoded[1].Name)

	md, err := os.ReadFile(filepath.Join(dir, "docs.md"))
	require.NoError(t, err)

	assert.Contains(t, string(md), "## circle")
	assert.Contains(t, string(md), "### circleRadius")
	assert.Contains(t, string(md), "| Units | `pixels` |")
	assert.Contains(t, string(md), "| Data-driven | yes |")
	assert.Contains(t, string(md), "## light")
}

func TestWriteJSONPreservesOrderAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	p := docsTestPlan(t)

	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	require.NoError(t, WriteJSON(BuildModel(p), first))
	require.NoError(t, WriteJSON(BuildModel(p), second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
