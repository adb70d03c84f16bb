package gen

import (
	"bytes"
	"fmt"
	"strings"

	"style-generator/internal/plan"
)

// GeneratedFile is one rendered artifact, ready to be written.
type GeneratedFile struct {
	// Filename is the output path relative to the configured root.
	Filename string
	// Content is the rendered file body.
	Content []byte
}

// Generator renders the emission targets from a style plan.
type Generator struct {
	config    Config
	formatter Formatter
}

// NewGenerator creates a generator with the default declaration formatter.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		config:    cfg,
		formatter: NewDeclarationFormatter(),
	}
}

// Generate renders every emission target against the plan. On a template
// failure it returns the files rendered so far along with the error.
func (g *Generator) Generate(p *plan.StylePlan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, target := range Targets() {
		content, err := g.render(target, p)
		if err != nil {
			return files, err
		}

		files = append(files, GeneratedFile{
			Filename: target.Path,
			Content:  content,
		})
	}

	return files, nil
}

func (g *Generator) render(target Target, p *plan.StylePlan) ([]byte, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, target.Template, p); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", target.Template, err)
	}

	content := buf.Bytes()

	// Only declaration outputs get a formatting pass.
	if strings.HasSuffix(target.Path, ".d.ts") {
		formatted, err := g.formatter.Format(content)
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", target.Path, err)
		}

		content = formatted
	}

	return content, nil
}
