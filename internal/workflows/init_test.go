package workflows

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/slp/internal/configs"
	kerrors "github.com/PolarWolf314/slp/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	site := newTestSite(t)

	result, err := Init(context.Background(), InitOptions{Options: site.options("http://localhost:9000/encrypt")})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(site.root, "encrypt", "slp.toml"), result.SettingsPath)
	assert.True(t, result.SecretsCreated)
	assert.FileExists(t, result.SecretsPath)

	settings, err := configs.LoadSettings(result.SettingsPath)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/encrypt", settings.Endpoint)
	assert.Equal(t, configs.DefaultLayout, settings.Layout)
}

func TestInitRefusesToOverwrite(t *testing.T) {
	site := newTestSite(t)
	site.settings(nil)

	_, err := Init(context.Background(), InitOptions{Options: site.options("")})

	require.ErrorIs(t, err, kerrors.ErrAlreadyInitialized)
}

func TestInitForceKeepsSecrets(t *testing.T) {
	site := newTestSite(t)
	site.settings(nil)
	site.secrets("notes: hunter2\n")

	result, err := Init(context.Background(), InitOptions{Options: site.options(""), Force: true})

	require.NoError(t, err)
	assert.False(t, result.SecretsCreated)
	assert.Equal(t, "notes: hunter2\n", site.read(configs.DefaultSecretsFile))

	settings, err := configs.LoadSettings(result.SettingsPath)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultKDFIterations, settings.KDFIterations)
}
