package workflows

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/slp/internal/configs"
	"github.com/PolarWolf314/slp/internal/encryptor/encryptortest"
	logger "github.com/PolarWolf314/slp/internal/logging"
	"github.com/stretchr/testify/require"
)

const protectedFrontMatter = "---\nlayout: shareable-link-protected\ntitle: x\n---\n"

// testSite is a site root with protected pages and a secrets file.
type testSite struct {
	t    *testing.T
	root string
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	return &testSite{t: t, root: t.TempDir()}
}

func (s *testSite) write(rel, content string) string {
	s.t.Helper()
	path := filepath.Join(s.root, filepath.FromSlash(rel))
	require.NoError(s.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(s.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (s *testSite) read(rel string) string {
	s.t.Helper()
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	require.NoError(s.t, err)
	return string(data)
}

// page adds a protected page. An empty source leaves out index-protected.html.
func (s *testSite) page(title, source string) {
	s.t.Helper()
	s.write(title+"/index.md", protectedFrontMatter+"# "+title+"\n")
	if source != "" {
		s.write(title+"/"+configs.DefaultProtectedName, source)
	}
}

func (s *testSite) secrets(content string) string {
	s.t.Helper()
	return s.write(configs.DefaultSecretsFile, content)
}

// settings writes a settings file tuned for fast verification.
func (s *testSite) settings(edit func(*configs.Settings)) {
	s.t.Helper()
	settings := configs.DefaultSettings()
	settings.KDFIterations = encryptortest.Iterations
	if edit != nil {
		edit(settings)
	}
	require.NoError(s.t, configs.SaveSettings(filepath.Join(s.root, configs.DefaultSettingsFile), settings))
}

func (s *testSite) options(endpoint string) Options {
	return Options{Root: s.root, Endpoint: endpoint, Logger: testLogger()}
}

func testLogger() logger.Logger {
	return logger.Logger{Out: io.Discard, Err: io.Discard}
}
