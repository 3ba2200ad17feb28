package site

import (
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/slp/internal/configs"
	"github.com/PolarWolf314/slp/internal/frontmatter"
	logger "github.com/PolarWolf314/slp/internal/logging"
)

// OutputExt is the extension of the encrypted artifact.
const OutputExt = ".json"

// Page is one protected page.
type Page struct {
	Title  string
	Dir    string
	Index  string
	Source string
	Output string
}

// NewPage derives a Page from the index file that declared the layout.
func NewPage(index, protectedName string) Page {
	dir := filepath.Dir(index)
	source := filepath.Join(dir, protectedName)
	return Page{
		Title:  filepath.Base(dir),
		Dir:    dir,
		Index:  index,
		Source: source,
		Output: strings.TrimSuffix(source, filepath.Ext(source)) + OutputExt,
	}
}

// Discover scans root for protected pages using the layout, line cap and
// skip patterns from settings.
func Discover(root string, settings *configs.Settings, log logger.Logger) ([]Page, error) {
	scanner := frontmatter.Scanner{
		Layout:   settings.Layout,
		MaxLines: settings.MaxLines,
		Skip:     settings.Skip,
		Logger:   log,
	}

	indexes, err := scanner.FindProtectedPages(root)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(indexes))
	for _, index := range indexes {
		pages = append(pages, NewPage(index, settings.ProtectedName))
	}
	return pages, nil
}

// Titles returns the title of every page, in order.
func Titles(pages []Page) []string {
	titles := make([]string, len(pages))
	for i, p := range pages {
		titles[i] = p.Title
	}
	return titles
}

// Outputs returns the artifact path of every page, in order.
func Outputs(pages []Page) []string {
	outputs := make([]string, len(pages))
	for i, p := range pages {
		outputs[i] = p.Output
	}
	return outputs
}
