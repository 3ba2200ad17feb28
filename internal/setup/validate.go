package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/slp/internal/secrets"
	"github.com/PolarWolf314/slp/internal/site"
)

// Options configures Validate.
type Options struct {
	// DefaultBytes is the entropy of passwords generated without a bytes option.
	DefaultBytes int

	// DryRun collects problems and plans generation without touching the store.
	DryRun bool
}

// Result describes a successful validation.
type Result struct {
	// Generated lists titles that received a new password.
	Generated []string

	// Planned lists the passwords a dry run would generate.
	Planned []Directive
}

// Validate checks every page against the filesystem and the secrets store,
// then resolves password generation. All problems are returned together as
// a *errors.SetupError. On success the store may hold generated passwords
// that the caller is responsible for saving.
func Validate(pages []site.Page, store *secrets.Store, opts Options) (*Result, error) {
	if opts.DefaultBytes <= 0 {
		opts.DefaultBytes = secrets.DefaultPasswordBytes
	}

	report := &Report{}

	for _, page := range pages {
		info, err := os.Stat(page.Source)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.Addf("missing page: %s", page.Source)
		case err != nil:
			report.Addf("unreadable page: %s: %v", page.Source, err)
		case !info.Mode().IsRegular():
			report.Addf("missing page: %s (not a regular file)", page.Source)
		}
	}

	for _, page := range pages {
		if _, ok := store.Get(page.Title); !ok {
			report.Addf("missing secret-store key for title: %s", page.Title)
		}
	}

	result := &Result{}
	if opts.DryRun {
		planned, err := Plan(store, report, opts.DefaultBytes)
		if err != nil {
			return nil, fmt.Errorf("resolving passwords: %w", err)
		}
		result.Planned = planned
	} else {
		generated, err := Resolve(store, report, opts.DefaultBytes)
		if err != nil {
			return nil, fmt.Errorf("resolving passwords: %w", err)
		}
		result.Generated = generated
	}

	if err := report.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
