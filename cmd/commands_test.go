package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/slp/internal/configs"
	"github.com/PolarWolf314/slp/internal/encryptor/encryptortest"
	kerrors "github.com/PolarWolf314/slp/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeSettings stores settings with a PBKDF2 cost matching the test server.
func writeSettings(t *testing.T, root string) {
	t.Helper()
	settings := configs.DefaultSettings()
	settings.KDFIterations = encryptortest.Iterations
	require.NoError(t, configs.SaveSettings(filepath.Join(root, configs.DefaultSettingsFile), settings))
}

func TestCheckPlansWithoutChanges(t *testing.T) {
	server := encryptortest.NewServer(t, encryptortest.Iterations)
	root := newSite(t, "notes: <bytes:16>\n", "notes")

	out, err := runCLI(t, "check", "--root", root, "--endpoint", server.Endpoint())

	require.NoError(t, err)
	assert.Contains(t, out, "✓ Encryption setup is valid for 1 protected pages")
	assert.Contains(t, out, "Would generate a 16 byte password for 'notes'")
	assert.Equal(t, "notes: <bytes:16>\n", readFile(t, root, "encrypt/slp_secrets.yaml"))
	assert.Empty(t, server.Requests())
}

func TestCheckReportsProblems(t *testing.T) {
	root := newSite(t, "notes: <bytes:x>\n", "notes")

	out, err := runCLI(t, "check", "--root", root)

	require.ErrorIs(t, err, kerrors.ErrValidation)
	assert.Contains(t, out, "✗ Encryption setup is invalid")
}

func TestStatusJSON(t *testing.T) {
	root := newSite(t, "notes: a\n", "notes", "trip")

	out, err := runCLI(t, "status", "--root", root, "--json")

	require.NoError(t, err)
	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Pages, 2)
	assert.Equal(t, pageStatusJSON{
		Title:     "notes",
		Source:    "notes/index-protected.html",
		Output:    "notes/index-protected.json",
		Status:    "unencrypted",
		HasSecret: true,
	}, got.Pages[0])
	assert.False(t, got.Pages[1].HasSecret)
	assert.Equal(t, 2, got.Summary.Unencrypted)
	assert.Equal(t, 1, got.Summary.MissingSecrets)
}

func TestStatusTable(t *testing.T) {
	root := newSite(t, "notes: a\n", "notes")
	writeFile(t, root, "drafts/index.md", protectedFrontMatter)

	out, err := runCLI(t, "scan", "--root", root)

	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "✗ not encrypted")
	assert.Contains(t, out, "(no secret)")
	assert.Contains(t, out, "1 page(s) missing their protected source page")
}

func TestVerifyAfterEncrypt(t *testing.T) {
	server := encryptortest.NewServer(t, encryptortest.Iterations)
	root := newSite(t, "notes: hunter2\n", "notes")
	writeSettings(t, root)

	_, err := runCLI(t, "--root", root, "--endpoint", server.Endpoint())
	require.NoError(t, err)

	out, err := runCLI(t, "verify", "--root", root)

	require.NoError(t, err)
	assert.Contains(t, out, "✓ All 1 encrypted pages match their source")
}

func TestVerifyReportsFailures(t *testing.T) {
	root := newSite(t, "notes: hunter2\n", "notes")
	writeSettings(t, root)
	sealed, err := encryptortest.Seal([]byte("<html>old</html>"), "hunter2", encryptortest.Iterations)
	require.NoError(t, err)
	writeFile(t, root, "notes/index-protected.json", string(sealed))

	out, err := runCLI(t, "verify", "--root", root)

	require.Error(t, err)
	assert.Contains(t, out, "✗ 1 of 1 pages failed verification")
	assert.Contains(t, out, "'notes'")
}

func TestExcludeUpdatesSiteConfig(t *testing.T) {
	root := newSite(t, "", "notes")
	writeFile(t, root, "_config.yaml", "title: Blog\n")

	out, err := runCLI(t, "exclude", "--root", root)

	require.NoError(t, err)
	assert.Contains(t, out, "notes/index-protected.html")

	var config map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(readFile(t, root, "_config.yaml")), &config))
	assert.Equal(t, []any{"notes/index-protected.html"}, config["exclude"])

	out, err = runCLI(t, "exclude", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "already excludes every protected page")
}

func TestInitCommand(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "init", "--root", root)

	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote settings to")
	assert.Contains(t, out, "✓ Created secrets file")
	assert.FileExists(t, filepath.Join(root, "encrypt", "slp.toml"))

	info, err := os.Stat(filepath.Join(root, "encrypt", "slp_secrets.yaml"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	out, err = runCLI(t, "init", "--root", root)
	require.ErrorIs(t, err, kerrors.ErrAlreadyInitialized)
	assert.Contains(t, out, "slp init --force")

	_, err = runCLI(t, "init", "--root", root, "--force")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "slp dev\n", out)

	out, err = runCLI(t, "version", "--banner")
	require.NoError(t, err)
	assert.Contains(t, out, "slp dev")
	assert.Greater(t, len(out), len("slp dev\n")+20)
}
