package workflows

import (
	"context"

	"github.com/PolarWolf314/slp/internal/site"
)

// ExcludeResult contains the outcome of an exclude operation.
type ExcludeResult struct {
	// SiteConfig is the site config file that was updated.
	SiteConfig string

	// Added lists the entries appended to the exclude list.
	Added []string
}

// Exclude adds every protected source page to the exclude list of the
// site's config, so the site generator does not publish it.
func Exclude(ctx context.Context, opts Options) (*ExcludeResult, error) {
	env, err := loadEnvironment(opts)
	if err != nil {
		return nil, err
	}

	pages, err := site.Discover(env.root, env.settings, env.log)
	if err != nil {
		return nil, err
	}

	configPath := env.path(env.settings.SiteConfig)
	added, err := site.UpdateExclude(configPath, env.root, pages)
	if err != nil {
		return nil, err
	}
	env.log.Infof("Added %d entries to %s", len(added), configPath)

	return &ExcludeResult{SiteConfig: configPath, Added: added}, nil
}
