package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// uniquePath joins dir and filename, inserting a numeric disambiguator
// "(1)", "(2)", ... before the extension until the candidate does not exist.
// Existence is re-checked per candidate; the loop is bounded only by the
// filesystem.
func uniquePath(dir, filename string) string {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, n, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
