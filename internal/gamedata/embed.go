// Package gamedata provides embedded tuning and rune data and utilities for
// loading it.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var dataFS embed.FS

// Load decodes one of the embedded JSON files into a T.
func Load[T any](filename string) (T, error) {
	var v T
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return v, fmt.Errorf("failed to read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &v); err != nil {
		return v, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return v, nil
}
