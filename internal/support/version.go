package support

import (
	"strconv"
	"strings"
)

// VersionAtLeast reports whether version is at least min.
//
// Both strings are dotted decimal versions ("8.1.0"). Comparison strips the
// dots and compares the remaining digit strings as integers, so "8.1.0"
// becomes 810. This matches the comparison the existing generated artifacts
// were produced with; it is only correct while compared versions keep the
// same digit width per component ("8.2.0" vs "8.10.0" would invert).
// See DESIGN.md before changing it.
//
// Malformed input never errors: it degrades to false, i.e. "unsupported".
func VersionAtLeast(version, min string) bool {
	v, ok := flatten(version)
	if !ok {
		return false
	}

	m, ok := flatten(min)
	if !ok {
		return false
	}

	return v >= m
}

func flatten(version string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(version, ".", ""))
	if err != nil {
		return 0, false
	}

	return n, true
}
