package docs

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"style-generator/internal/plan"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").ParseFS(templateFS, "templates/*.tmpl"),
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	jsonName     = "docs.json"
	markdownName = "docs.md"
)

// Emit writes docs.json and docs.md into the docs directory. The Markdown
// step runs only after the JSON artifact is fully written.
func Emit(p *plan.StylePlan, docsDir string) error {
	if err := os.MkdirAll(docsDir, dirPerm); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}

	model := BuildModel(p)

	if err := WriteJSON(model, filepath.Join(docsDir, jsonName)); err != nil {
		return err
	}

	return WriteMarkdown(model, filepath.Join(docsDir, markdownName))
}

// WriteJSON marshals the doc model and writes it to path.
func WriteJSON(model Model, path string) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", jsonName, err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", jsonName, err)
	}

	return nil
}

// WriteMarkdown renders the Markdown reference and writes it to path.
func WriteMarkdown(model Model, path string) error {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, "docs.md.tmpl", model); err != nil {
		return fmt.Errorf("rendering %s: %w", markdownName, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", markdownName, err)
	}

	return nil
}
