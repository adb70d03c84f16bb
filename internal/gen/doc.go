// Package gen renders the enumerated style plan into the shipped source
// artifacts.
//
// There are five fixed targets: the iOS style bridge header and
// implementation (Objective-C), the Android style factory (Java), the
// TypeScript declaration file, and the JavaScript style-map utility module.
// Each target is one embedded text/template rendered against the plan;
// declaration outputs additionally go through a formatting pass.
package gen
