package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const protectedFrontMatter = "---\nlayout: shareable-link-protected\n---\n"

// runCLI executes the root command with args and returns everything it
// printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		ResetGlobalState()
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// newSite creates a site with one protected page per title and the given
// secrets file.
func newSite(t *testing.T, secrets string, titles ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, title := range titles {
		writeFile(t, root, title+"/index.md", protectedFrontMatter)
		writeFile(t, root, title+"/index-protected.html", "<html>"+title+"</html>")
	}
	writeFile(t, root, "encrypt/slp_secrets.yaml", secrets)
	return root
}
