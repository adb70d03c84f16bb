package stylespec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
)

// ErrNotFound reports a missing style spec document. The CLI turns it into
// an exit-status-1 message telling the operator how to fetch the spec.
var ErrNotFound = errors.New("style spec not found")

// LoadFile reads and parses the style spec document at the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
	}

	if err != nil {
		return nil, fmt.Errorf("reading style spec %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses raw style spec JSON into a Document.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("style spec is not valid JSON")
	}

	return &Document{raw: data}, nil
}
