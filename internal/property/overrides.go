package property

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var overridesYAML []byte

// overrideTables maps catalog name -> attribute name -> forced function types.
type overrideTables map[string]map[string][]FunctionType

var overrides = mustLoadOverrides(overridesYAML)

func mustLoadOverrides(data []byte) overrideTables {
	tables, err := parseOverrides(data)
	if err != nil {
		panic(err)
	}

	return tables
}

func parseOverrides(data []byte) (overrideTables, error) {
	var tables overrideTables

	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing function-type overrides: %w", err)
	}

	for catalog, attrs := range tables {
		for name, types := range attrs {
			for _, ft := range types {
				if !ft.IsValid() {
					return nil, fmt.Errorf("override %s/%s: unknown function type %q", catalog, name, ft)
				}
			}
		}
	}

	return tables, nil
}

// forcedFunctionTypes returns the override entry for an attribute, if any.
func forcedFunctionTypes(kind CatalogKind, name string) ([]FunctionType, bool) {
	types, ok := overrides[kind.String()][name]
	return types, ok
}
