package workflows

import (
	"context"
	"os"

	"github.com/PolarWolf314/slp/internal/site"
)

// PageStatus represents the encryption status of a protected page.
type PageStatus string

const (
	// StatusCurrent means the artifact is newer than the source page.
	StatusCurrent PageStatus = "current"
	// StatusStale means the source page was modified after encryption.
	StatusStale PageStatus = "stale"
	// StatusUnencrypted means the source page has no artifact yet.
	StatusUnencrypted PageStatus = "unencrypted"
	// StatusMissingSource means the protected source page does not exist.
	StatusMissingSource PageStatus = "missing_source"
)

// PageStatusInfo holds the status of one page.
type PageStatusInfo struct {
	Page site.Page

	// Status is the encryption status of the page.
	Status PageStatus

	// HasSecret reports whether the secrets file has an entry for the title.
	HasSecret bool
}

// StatusSummary holds counts of pages by status.
type StatusSummary struct {
	Current        int
	Stale          int
	Unencrypted    int
	MissingSource  int
	MissingSecrets int
}

// StatusResult contains the outcome of a status operation.
type StatusResult struct {
	// Root is the absolute site root.
	Root string

	// Pages contains the status of each protected page, in scan order.
	Pages []PageStatusInfo

	// Summary contains counts of pages by status.
	Summary StatusSummary
}

// Status lists the protected pages under the site root and whether each
// one has an up to date artifact:
//   - current: artifact is newer than the source page
//   - stale: source page modified after encryption
//   - unencrypted: source page exists with no artifact
//   - missing_source: the protected source page does not exist
//
// A secrets file that cannot be read does not fail the status; every page
// is then reported without a secret.
func Status(ctx context.Context, opts Options) (*StatusResult, error) {
	env, err := loadEnvironment(opts)
	if err != nil {
		return nil, err
	}

	pages, err := site.Discover(env.root, env.settings, env.log)
	if err != nil {
		return nil, err
	}

	known := map[string]bool{}
	if store, err := loadStore(env); err != nil {
		env.log.Warnf("Could not read secrets file: %v", err)
	} else {
		for _, title := range store.Titles() {
			known[title] = true
		}
	}

	result := &StatusResult{Root: env.root}
	for _, page := range pages {
		info := PageStatusInfo{
			Page:      page,
			Status:    determinePageStatus(page),
			HasSecret: known[page.Title],
		}
		result.Pages = append(result.Pages, info)
		result.Summary.add(info)
	}
	return result, nil
}

func determinePageStatus(page site.Page) PageStatus {
	sourceInfo, err := os.Stat(page.Source)
	if err != nil {
		return StatusMissingSource
	}
	outputInfo, err := os.Stat(page.Output)
	if err != nil {
		return StatusUnencrypted
	}
	if outputInfo.ModTime().Before(sourceInfo.ModTime()) {
		return StatusStale
	}
	return StatusCurrent
}

func (s *StatusSummary) add(info PageStatusInfo) {
	switch info.Status {
	case StatusCurrent:
		s.Current++
	case StatusStale:
		s.Stale++
	case StatusUnencrypted:
		s.Unencrypted++
	case StatusMissingSource:
		s.MissingSource++
	}
	if !info.HasSecret {
		s.MissingSecrets++
	}
}
