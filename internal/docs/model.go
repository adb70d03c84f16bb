package docs

import (
	"encoding/json"

	"style-generator/internal/plan"
	"style-generator/internal/property"
)

// Model is the documentation view of a style plan: an ordered array of
// layers, never a map, so layer and property order survive marshalling.
type Model []LayerDoc

// LayerDoc documents one layer and its properties.
type LayerDoc struct {
	Name       string        `json:"name"`
	Light      bool          `json:"light,omitempty"`
	Properties []PropertyDoc `json:"properties"`
}

// PropertyDoc documents one property record.
type PropertyDoc struct {
	Name                 string          `json:"name"`
	ID                   string          `json:"id"`
	Type                 string          `json:"type"`
	Value                string          `json:"value,omitempty"`
	Default              json.RawMessage `json:"default,omitempty"`
	Description          string          `json:"description"`
	Requires             []string        `json:"requires,omitempty"`
	DisabledBy           []string        `json:"disabledBy,omitempty"`
	Values               []ValueDoc      `json:"values,omitempty"`
	Minimum              *float64        `json:"minimum,omitempty"`
	Maximum              *float64        `json:"maximum,omitempty"`
	Units                string          `json:"units,omitempty"`
	Transition           bool            `json:"transition"`
	Expression           ExpressionDoc   `json:"expression"`
	Support              SupportDoc      `json:"support"`
	AllowedFunctionTypes []string        `json:"allowedFunctionTypes"`
}

// ValueDoc documents one allowed value of an enum property.
type ValueDoc struct {
	Value string `json:"value"`
	Doc   string `json:"doc,omitempty"`
}

// ExpressionDoc documents a property's expression capability.
type ExpressionDoc struct {
	Interpolated bool     `json:"interpolated"`
	Parameters   []string `json:"parameters,omitempty"`
}

// SupportDoc documents the resolved support matrix.
type SupportDoc struct {
	Basic      PlatformsDoc `json:"basic"`
	DataDriven PlatformsDoc `json:"dataDriven"`
}

// PlatformsDoc holds the per-platform booleans of one tier.
type PlatformsDoc struct {
	Android bool `json:"android"`
	IOS     bool `json:"ios"`
}

// BuildModel converts a style plan into its documentation model.
func BuildModel(p *plan.StylePlan) Model {
	model := make(Model, 0, len(p.Layers))

	for _, layer := range p.Layers {
		doc := LayerDoc{
			Name:       layer.Name,
			Light:      layer.Light,
			Properties: make([]PropertyDoc, 0, len(layer.Properties)),
		}

		for _, prop := range layer.Properties {
			doc.Properties = append(doc.Properties, buildPropertyDoc(prop))
		}

		model = append(model, doc)
	}

	return model
}

func buildPropertyDoc(prop property.Property) PropertyDoc {
	functionTypes := make([]string, 0, len(prop.AllowedFunctionTypes))
	for _, ft := range prop.AllowedFunctionTypes {
		functionTypes = append(functionTypes, string(ft))
	}

	values := make([]ValueDoc, 0, len(prop.Doc.Values))
	for _, v := range prop.Doc.Values {
		values = append(values, ValueDoc{Value: v.Value, Doc: v.Doc})
	}

	var def json.RawMessage
	if prop.Default != "" {
		def = json.RawMessage(prop.Default)
	}

	return PropertyDoc{
		Name:        prop.Name,
		ID:          prop.ID,
		Type:        prop.Type,
		Value:       prop.Value,
		Default:     def,
		Description: prop.Doc.Description,
		Requires:    prop.Doc.Requires,
		DisabledBy:  prop.Doc.DisabledBy,
		Values:      values,
		Minimum:     prop.Doc.Minimum,
		Maximum:     prop.Doc.Maximum,
		Units:       prop.Doc.Units,
		Transition:  prop.Transition,
		Expression: ExpressionDoc{
			Interpolated: prop.Expression.Interpolated,
			Parameters:   prop.Expression.Parameters,
		},
		Support: SupportDoc{
			Basic:      PlatformsDoc{Android: prop.Support.Basic.Android, IOS: prop.Support.Basic.IOS},
			DataDriven: PlatformsDoc{Android: prop.Support.DataDriven.Android, IOS: prop.Support.DataDriven.IOS},
		},
		AllowedFunctionTypes: functionTypes,
	}
}
