package gen

import "path/filepath"

// Target pairs one embedded template with its output location.
type Target struct {
	// Template is the template file name under templates/.
	Template string
	// Path is the output location relative to the configured root.
	Path string
}

// Targets returns the fixed emission list. Order matters only for
// determinism of logs; the targets are independent.
func Targets() []Target {
	return []Target{
		{Template: "RCTMGLStyle.h.tmpl", Path: filepath.Join("ios", "RCTMGL", "RCTMGLStyle.h")},
		{Template: "RCTMGLStyle.m.tmpl", Path: filepath.Join("ios", "RCTMGL", "RCTMGLStyle.m")},
		{Template: "RCTMGLStyleFactory.java.tmpl", Path: filepath.Join(
			"android", "rctmgl", "src", "main", "java", "com", "mapbox", "rctmgl", "components", "styles", "RCTMGLStyleFactory.java")},
		{Template: "styleMap.js.tmpl", Path: filepath.Join("javascript", "utils", "styleMap.js")},
		{Template: "MapboxStyles.d.ts.tmpl", Path: "index.d.ts"},
	}
}

// Config holds the emission configuration.
type Config struct {
	// InPackage writes the artifacts into the package tree itself;
	// otherwise they go to the sibling maps checkout.
	InPackage bool
	// Root overrides the output root entirely when non-empty. Used by
	// tests and one-off runs.
	Root string
}

// DefaultConfig returns the emission configuration for a packaged build.
func DefaultConfig() Config {
	return Config{InPackage: true}
}

// OutputRoot returns the directory all target paths are relative to.
func (c Config) OutputRoot() string {
	if c.Root != "" {
		return c.Root
	}

	if c.InPackage {
		return "."
	}

	return filepath.Join("..", "maps")
}
