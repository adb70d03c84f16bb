package plan

import (
	"style-generator/internal/diagnostic"
	"style-generator/internal/property"
	"style-generator/internal/support"
)

// StylePlan is the final output of enumeration. It contains everything the
// emission targets and documentation builders need, and is never mutated
// after Enumerate returns.
type StylePlan struct {
	// Layers is the ordered list of enumerated layers. The synthetic
	// "light" layer is always the last entry.
	Layers []Layer
	// Notices contains the informational messages from enumeration.
	Notices diagnostic.Notices
}

// Layer is one enumerated layer: a supported layer type with its resolved
// property list, or the synthetic light pseudo-layer.
type Layer struct {
	// Name is the layer type identifier ("fill", "line", ..., "light").
	Name string
	// Properties holds the layer's property records, layout properties
	// before paint properties, each sub-list in spec key order.
	Properties []property.Property
	// Light marks the synthetic light pseudo-layer.
	Light bool
}

// Config holds the enumeration configuration.
type Config struct {
	// Targets are the platform SDK versions attributes are filtered
	// against.
	Targets support.Targets
}

// DefaultConfig returns the enumeration configuration for the shipped
// artifacts.
func DefaultConfig() Config {
	return Config{
		Targets: support.DefaultTargets(),
	}
}

// LightLayerName is the name of the synthetic light pseudo-layer.
const LightLayerName = "light"
