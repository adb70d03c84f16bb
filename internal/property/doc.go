// Package property builds normalized, platform-annotated property records
// from raw style spec attributes.
//
// A property record carries everything the emission targets and the
// documentation builders need: the camelCased identifier, the documentation
// sub-record, type/default/transition/expression metadata, the resolved
// support matrix, and the set of dynamic function types the property may be
// styled with.
//
// # Function type overrides
//
// The allowed function types normally derive from the attribute's
// zoom-function and property-function flags. A small set of named attributes
// is deliberately restricted to camera functions regardless of what the
// specification declares; that exception list is product policy, not a
// derivable rule, and lives in the embedded overrides.yaml so it can be
// audited and tested on its own.
package property
