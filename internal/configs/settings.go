package configs

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

const (
	// DefaultSettingsFile is the settings path relative to the site root.
	DefaultSettingsFile = "encrypt/slp.toml"

	DefaultLayout        = "shareable-link-protected"
	DefaultMaxLines      = 50
	DefaultSecretsFile   = "encrypt/slp_secrets.yaml"
	DefaultProtectedName = "index-protected.html"
	DefaultEndpoint      = "http://127.0.0.1:49160/encrypt"
	DefaultPasswordBytes = 32
	DefaultSiteConfig    = "_config.yaml"

	// DefaultKDFIterations matches the PBKDF2 cost used by the encryption server.
	DefaultKDFIterations = 480000
)

// DefaultSkip lists directories never scanned for protected pages.
var DefaultSkip = []string{"_site/**", ".git/**", "node_modules/**"}

type Settings struct {
	Layout        string        `toml:"layout"`
	MaxLines      int           `toml:"max_lines"`
	SecretsFile   string        `toml:"secrets_file"`
	ProtectedName string        `toml:"protected_name"`
	Endpoint      string        `toml:"endpoint"`
	Timeout       time.Duration `toml:"timeout,omitempty"`
	DefaultBytes  int           `toml:"default_bytes"`
	Skip          []string      `toml:"skip"`
	SiteConfig    string        `toml:"site_config"`
	AuditLog      string        `toml:"audit_log,omitempty"`
	KDFIterations int           `toml:"kdf_iterations"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Layout:        DefaultLayout,
		MaxLines:      DefaultMaxLines,
		SecretsFile:   DefaultSecretsFile,
		ProtectedName: DefaultProtectedName,
		Endpoint:      DefaultEndpoint,
		DefaultBytes:  DefaultPasswordBytes,
		Skip:          append([]string(nil), DefaultSkip...),
		SiteConfig:    DefaultSiteConfig,
		KDFIterations: DefaultKDFIterations,
	}
}

// LoadSettings decodes the TOML file at path over the defaults.
// A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings writes settings to path, creating parent directories.
func SaveSettings(path string, settings *Settings) error {
	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	if s.Layout == "" {
		return fmt.Errorf("%w: layout must not be empty", kerrors.ErrValidation)
	}
	if s.SecretsFile == "" {
		return fmt.Errorf("%w: secrets_file must not be empty", kerrors.ErrValidation)
	}
	if s.ProtectedName == "" || filepath.Base(s.ProtectedName) != s.ProtectedName {
		return fmt.Errorf("%w: protected_name must be a file name, got %q", kerrors.ErrValidation, s.ProtectedName)
	}
	if s.DefaultBytes <= 0 {
		return fmt.Errorf("%w: default_bytes must be positive, got %d", kerrors.ErrValidation, s.DefaultBytes)
	}
	if s.KDFIterations <= 0 {
		return fmt.Errorf("%w: kdf_iterations must be positive, got %d", kerrors.ErrValidation, s.KDFIterations)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", kerrors.ErrValidation)
	}

	u, err := url.Parse(s.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an http(s) URL, got %q", kerrors.ErrValidation, s.Endpoint)
	}

	return nil
}

// Path resolves a settings path against the site root.
// Absolute paths are returned unchanged.
func (s *Settings) Path(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}
