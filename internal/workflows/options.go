package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/slp/internal/configs"
	logger "github.com/PolarWolf314/slp/internal/logging"
	"github.com/PolarWolf314/slp/internal/secrets"
)

// Options holds what every workflow needs to locate the site.
type Options struct {
	// Root is the site root. Defaults to the working directory.
	Root string

	// SettingsPath overrides <root>/encrypt/slp.toml.
	SettingsPath string

	// Endpoint overrides the encryption server endpoint from settings.
	Endpoint string

	Logger logger.Logger
}

// environment is the resolved site root and settings.
type environment struct {
	root     string
	settings *configs.Settings
	log      logger.Logger
}

func loadEnvironment(opts Options) (*environment, error) {
	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		root = wd
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving site root: %w", err)
	}

	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = filepath.Join(root, filepath.FromSlash(configs.DefaultSettingsFile))
	}

	settings, err := configs.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	if opts.Endpoint != "" {
		settings.Endpoint = opts.Endpoint
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}

	opts.Logger.Debugf("Site root: %s, settings: %s", root, settingsPath)
	return &environment{root: root, settings: settings, log: opts.Logger}, nil
}

func (e *environment) path(p string) string {
	return e.settings.Path(e.root, p)
}

func loadStore(env *environment) (*secrets.Store, error) {
	return secrets.Load(env.path(env.settings.SecretsFile))
}
