// Package frontmatter finds site pages whose front matter declares a layout.
//
// Front matter is the block at the top of a page delimited by two lines
// reading "---". Only "key: value" lines inside that block are inspected.
package frontmatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	logger "github.com/PolarWolf314/slp/internal/logging"
)

const delimiter = "---"

// IndexNames are the page file names considered by the scanner.
var IndexNames = []string{"index.html", "index.md"}

// Match reports whether the front matter read from r has a key containing
// "layout" whose value contains layout. When maxLines is positive, at most
// that many lines are read.
func Match(r io.Reader, layout string, maxLines int) (bool, error) {
	br := bufio.NewReader(r)
	inFrontMatter := false
	lines := 0

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return false, readErr
		}
		if line == "" && readErr == io.EOF {
			return false, nil
		}

		lines++
		if maxLines > 0 && lines > maxLines {
			return false, nil
		}

		if strings.TrimSpace(line) == delimiter {
			if inFrontMatter {
				return false, nil
			}
			inFrontMatter = true
		} else if inFrontMatter {
			if key, value, found := strings.Cut(line, ":"); found {
				key = strings.TrimSpace(key)
				value = strings.TrimSpace(value)
				if strings.Contains(key, "layout") && strings.Contains(value, layout) {
					return true, nil
				}
			}
		}

		if readErr == io.EOF {
			return false, nil
		}
	}
}

// HasLayout opens path and runs Match on its contents.
func HasLayout(path, layout string, maxLines int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	return Match(f, layout, maxLines)
}

// Scanner walks a site tree looking for protected pages.
type Scanner struct {
	Layout   string
	MaxLines int

	// Skip holds doublestar patterns, relative to the walk root, of
	// directories that are not descended into.
	Skip []string

	Logger logger.Logger
}

// HasLayout is the package HasLayout with read failures logged and
// reported as no match.
func (s Scanner) HasLayout(path string) bool {
	ok, err := HasLayout(path, s.Layout, s.MaxLines)
	if err != nil {
		s.Logger.Warnf("Error reading %s: %v", path, err)
		return false
	}
	return ok
}

// FindProtectedPages returns every index.html or index.md under root whose
// front matter declares the scanner's layout, in lexical walk order.
func (s Scanner) FindProtectedPages(root string) ([]string, error) {
	for _, pattern := range s.Skip {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid skip pattern %q", pattern)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to scan %s: not a directory", root)
	}

	var pages []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				s.Logger.Warnf("Skipping %s: %v", path, err)
				return nil
			}
			return err
		}

		if d.IsDir() {
			if path != root && s.skipped(root, path) {
				s.Logger.Debugf("Skipping directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !isIndexName(d.Name()) {
			return nil
		}

		if s.HasLayout(path) {
			s.Logger.Debugf("Found protected page %s", path)
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return pages, nil
}

func (s Scanner) skipped(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.Skip {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func isIndexName(name string) bool {
	for _, n := range IndexNames {
		if name == n {
			return true
		}
	}
	return false
}
