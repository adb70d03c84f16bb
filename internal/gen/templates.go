package gen

import (
	"embed"
	"strings"
	"text/template"

	"style-generator/internal/property"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl"),
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"camel":         property.CamelCase,
		"pascal":        pascalCase,
		"objcLayerType": objcLayerType,
		"javaLayerType": javaLayerType,
		"tsType":        tsType,
		"jsStyleType":   jsStyleType,
		"javaAccessor":  javaAccessor,
		"functionList":  functionList,
	}
}

func pascalCase(name string) string {
	camel := property.CamelCase(name)
	if camel == "" {
		return ""
	}

	return strings.ToUpper(camel[:1]) + camel[1:]
}

// objcLayerType returns the native iOS type the generated method receives.
func objcLayerType(layerName string) string {
	if layerName == "light" {
		return "MGLLight"
	}

	return "MGL" + pascalCase(layerName) + "StyleLayer"
}

// javaLayerType returns the native Android type the generated method
// receives.
func javaLayerType(layerName string) string {
	if layerName == "light" {
		return "Light"
	}

	return pascalCase(layerName) + "Layer"
}

// tsType maps a property to its TypeScript declaration type.
func tsType(p property.Property) string {
	switch p.Type {
	case "color", "string", "resolvedImage", "formatted":
		return "string"
	case "number":
		return "number"
	case "boolean":
		return "boolean"
	case "enum":
		return tsEnum(p)
	case "array":
		switch p.Value {
		case "number":
			return "number[]"
		case "string", "enum":
			return "string[]"
		default:
			return "any[]"
		}
	default:
		return "any"
	}
}

func tsEnum(p property.Property) string {
	if len(p.Doc.Values) == 0 {
		return "string"
	}

	parts := make([]string, len(p.Doc.Values))
	for i, v := range p.Doc.Values {
		parts[i] = "'" + v.Value + "'"
	}

	return strings.Join(parts, " | ")
}

// jsStyleType maps a property to its StyleTypes constant in the generated
// style map module.
func jsStyleType(p property.Property) string {
	switch {
	case p.Image:
		return "Image"
	case p.Translate:
		return "Translation"
	case p.Type == "color":
		return "Color"
	case p.Type == "enum":
		return "Enum"
	default:
		return "Constant"
	}
}

// javaAccessor returns the RCTMGLStyleValue getter expression feeding the
// Android PropertyFactory call for a property.
func javaAccessor(p property.Property) string {
	switch p.Type {
	case "color":
		return "styleValue.getColorInt(VALUE_KEY)"
	case "number":
		return "styleValue.getFloat(VALUE_KEY)"
	case "boolean":
		return "styleValue.getBoolean(VALUE_KEY)"
	case "array":
		if p.Value == "string" || p.Value == "enum" {
			return "styleValue.getStringArray(VALUE_KEY)"
		}

		return "styleValue.getFloatArray(VALUE_KEY)"
	default:
		return "styleValue.getString(VALUE_KEY)"
	}
}

// functionList renders the allowed function types as a JS array literal.
func functionList(types []property.FunctionType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = "'" + string(t) + "'"
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
