package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/slp/internal/configs"
	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	Options

	// Force overwrites an existing settings file.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// SettingsPath is the settings file that was written.
	SettingsPath string

	// SecretsPath is the secrets file.
	SecretsPath string

	// SecretsCreated reports whether an empty secrets file was created.
	SecretsCreated bool
}

// Init writes the default settings file under the site root and creates an
// empty secrets file next to it when none exists. An existing secrets file
// is never touched.
//
// Returns ErrAlreadyInitialized if the settings file exists and Force is not set.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving site root: %w", err)
	}

	settings := configs.DefaultSettings()
	if opts.Endpoint != "" {
		settings.Endpoint = opts.Endpoint
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}

	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = settings.Path(root, configs.DefaultSettingsFile)
	}

	if _, err := os.Stat(settingsPath); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrAlreadyInitialized, settingsPath)
	}

	if err := configs.SaveSettings(settingsPath, settings); err != nil {
		return nil, err
	}
	opts.Logger.Infof("Wrote settings to %s", settingsPath)

	result := &InitResult{
		SettingsPath: settingsPath,
		SecretsPath:  settings.Path(root, settings.SecretsFile),
	}

	if _, err := os.Stat(result.SecretsPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(result.SecretsPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(result.SecretsPath), err)
		}
		if err := os.WriteFile(result.SecretsPath, nil, 0600); err != nil {
			return nil, fmt.Errorf("failed to create secrets file: %w", err)
		}
		result.SecretsCreated = true
		opts.Logger.Infof("Created empty secrets file %s", result.SecretsPath)
	}

	return result, nil
}
