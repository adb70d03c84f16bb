package property

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CamelCase converts a hyphenated attribute identifier to a camelCase
// identifier: "fill-extrusion-color" becomes "fillExtrusionColor".
func CamelCase(name string) string {
	segments := strings.Split(name, "-")

	var b strings.Builder

	first := true

	for _, seg := range segments {
		if seg == "" {
			continue
		}

		if first {
			b.WriteString(seg)
			first = false

			continue
		}

		b.WriteString(titleCaser.String(seg))
	}

	return b.String()
}

// FormatDescription rewrites free-text documentation so that embedded
// hyphenated attribute tokens read as the generated camelCase identifiers:
// "Disabled by `fill-pattern`." becomes "Disabled by `fillPattern`.".
// Surrounding punctuation (backticks, quotes, sentence marks) is preserved.
func FormatDescription(description string) string {
	words := strings.Split(description, " ")

	for i, word := range words {
		if !strings.Contains(word, "-") {
			continue
		}

		prefix, core, suffix := trimPunct(word)
		if core == "" {
			continue
		}

		words[i] = prefix + CamelCase(core) + suffix
	}

	return strings.Join(words, " ")
}

// trimPunct splits a token into leading punctuation, the identifier core
// and trailing punctuation.
func trimPunct(word string) (prefix, core, suffix string) {
	start := 0
	for start < len(word) && !isIdentChar(word[start]) {
		start++
	}

	end := len(word)
	for end > start && !isIdentChar(word[end-1]) {
		end--
	}

	return word[:start], word[start:end], word[end:]
}

func isIdentChar(c byte) bool {
	return c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
