// Package plan enumerates the style spec into the ordered, immutable
// StylePlan consumed by code generation and documentation emission.
//
// Enumeration pipeline:
//  1. Filter layer types to those with basic support on both platforms
//  2. Per retained layer, build property records for the layout and paint
//     catalog attributes that individually pass the same basic-support
//     filter (layout before paint, spec key order within each)
//  3. Append the synthetic "light" layer, built from the light catalog,
//     always last
//
// Filtering is attribute-scoped: a layer that survives the layer-level
// filter stays in the plan even when every one of its attributes is
// filtered out. Dropped layers and attributes are recorded as notices.
package plan
