package utils

import (
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/slp/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// RelPaths returns paths relative to root, slash separated. Paths that
// cannot be made relative are kept as they are.
func RelPaths(root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			out[i] = p
			continue
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}
