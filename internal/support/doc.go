// Package support resolves per-attribute SDK support declarations into a
// boolean support matrix for the two target platforms.
//
// Support comes in two capability tiers:
//   - basic functionality: the property can be set at all
//   - data-driven styling: the property value can vary per rendered feature
//
// The data-driven tier is conservative: it is reported as supported only
// when every target platform supports it, so any generated data-driven
// code path is guaranteed to work everywhere the artifacts ship.
package support
