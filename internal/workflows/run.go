package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/slp/internal/audit"
	"github.com/PolarWolf314/slp/internal/encryptor"
	"github.com/PolarWolf314/slp/internal/secrets"
	"github.com/PolarWolf314/slp/internal/setup"
	"github.com/PolarWolf314/slp/internal/site"
	"github.com/PolarWolf314/slp/internal/utils"
)

// RunOptions configures the run workflow.
type RunOptions struct {
	Options

	// DryRun validates and plans password generation without saving the
	// secrets file or contacting the encryption server.
	DryRun bool
}

// RunResult contains the outcome of a run.
type RunResult struct {
	// Root is the absolute site root.
	Root string

	// Pages lists the protected pages found.
	Pages []site.Page

	// SecretsFile is the secrets file that was read.
	SecretsFile string

	// Generated lists titles that received a new password.
	Generated []string

	// Planned lists the passwords a dry run would generate.
	Planned []setup.Directive

	// Encrypted lists the artifacts written, in page order.
	Encrypted []string

	// DryRun indicates whether this was a dry run.
	DryRun bool
}

// Run discovers protected pages, validates the setup, generates missing
// passwords and encrypts every page.
//
// Setup problems are all collected before anything is changed and returned
// together as a *errors.SetupError; in that case the secrets file is left
// untouched and the encryption server is never contacted. Pages are then
// encrypted one at a time and the first failure stops the run.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	env, err := loadEnvironment(opts.Options)
	if err != nil {
		return nil, err
	}
	log := env.log

	pages, err := site.Discover(env.root, env.settings, log)
	if err != nil {
		return nil, fmt.Errorf("discovering protected pages: %w", err)
	}
	log.Infof("Found %d protected pages", len(pages))

	secretsPath := env.path(env.settings.SecretsFile)
	store, err := secrets.Load(secretsPath)
	if err != nil {
		return nil, err
	}

	validation, err := setup.Validate(pages, store, setup.Options{
		DefaultBytes: env.settings.DefaultBytes,
		DryRun:       opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Root:        env.root,
		Pages:       pages,
		SecretsFile: secretsPath,
		Generated:   validation.Generated,
		Planned:     validation.Planned,
		DryRun:      opts.DryRun,
	}

	trail := audit.NewTrail(env.path(env.settings.AuditLog))

	if opts.DryRun {
		if len(validation.Planned) > 0 {
			titles := make([]string, len(validation.Planned))
			for i, d := range validation.Planned {
				titles[i] = d.Title
			}
			trail.Log(audit.Entry{Operation: "generate", Titles: titles, DryRun: true})
		}
		return result, nil
	}

	if store.Dirty() {
		log.Infof("Saving %d generated passwords to %s", len(validation.Generated), secretsPath)
		if err := store.Save(); err != nil {
			return nil, err
		}
		trail.Log(audit.Entry{Operation: "generate", Titles: validation.Generated})
	}

	client := encryptor.NewClient(env.settings.Endpoint, env.settings.Timeout, log)
	for _, page := range pages {
		password, _ := store.Get(page.Title)
		log.Debugf("Encrypting %s", page.Source)
		if err := client.Encrypt(ctx, page.Source, page.Output, password); err != nil {
			logEncrypted(trail, env, result.Encrypted)
			return nil, fmt.Errorf("encrypting %s: %w", page.Title, err)
		}
		result.Encrypted = append(result.Encrypted, page.Output)
	}

	logEncrypted(trail, env, result.Encrypted)
	return result, nil
}

func logEncrypted(trail *audit.Trail, env *environment, outputs []string) {
	if len(outputs) == 0 {
		return
	}
	trail.Log(audit.Entry{Operation: "encrypt", Files: utils.RelPaths(env.root, outputs)})
}
