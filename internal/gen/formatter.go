package gen

import (
	"strings"
)

// Formatter reformats rendered output before it is written. The driver only
// applies it to TypeScript declaration targets.
type Formatter interface {
	Format(src []byte) ([]byte, error)
}

// declarationFormatter normalizes rendered TypeScript declarations: trailing
// whitespace is stripped, runs of blank lines collapse to one, and the file
// ends with exactly one newline.
type declarationFormatter struct{}

// NewDeclarationFormatter returns the default .d.ts formatter.
func NewDeclarationFormatter() Formatter {
	return declarationFormatter{}
}

func (declarationFormatter) Format(src []byte) ([]byte, error) {
	lines := strings.Split(string(src), "\n")

	var (
		out       []string
		prevBlank bool
	)

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")

		blank := line == ""
		if blank && prevBlank {
			continue
		}

		out = append(out, line)
		prevBlank = blank
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return []byte(strings.Join(out, "\n") + "\n"), nil
}
