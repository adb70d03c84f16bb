// Package docs emits the documentation artifacts for the enumerated style
// plan: a structured docs.json and a docs.md reference.
//
// The Markdown builder works from the same doc model the JSON is marshalled
// from and runs strictly after the JSON file has been written, so the two
// artifacts can never describe different property sets.
package docs
