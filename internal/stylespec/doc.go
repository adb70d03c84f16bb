// Package stylespec loads and navigates the map style specification
// document, the JSON reference describing layer types and their paint and
// layout attributes.
//
// The document is read fully into memory once and is immutable for the rest
// of the run. Object key order in the document is meaningful: the generated
// artifacts and documentation must list layers and properties in the order
// the specification declares them, so all iteration here goes through gjson,
// which walks objects in document order, never through Go maps.
package stylespec
