package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	site := newTestSite(t)
	site.page("current", "<html>a</html>")
	site.page("missing", "")
	site.page("stale", "<html>b</html>")
	site.page("unencrypted", "<html>c</html>")
	site.secrets("current: a\nstale: b\n")

	old := time.Now().Add(-time.Hour)
	current := site.write("current/index-protected.json", "{}")
	require.NoError(t, os.Chtimes(filepath.Join(site.root, "current", "index-protected.html"), old, old))
	require.NoError(t, os.Chtimes(current, time.Now(), time.Now()))
	stale := site.write("stale/index-protected.json", "{}")
	require.NoError(t, os.Chtimes(stale, old, old))

	result, err := Status(context.Background(), site.options(""))

	require.NoError(t, err)
	require.Len(t, result.Pages, 4)
	got := map[string]PageStatus{}
	for _, p := range result.Pages {
		got[p.Page.Title] = p.Status
	}
	assert.Equal(t, map[string]PageStatus{
		"current":     StatusCurrent,
		"missing":     StatusMissingSource,
		"stale":       StatusStale,
		"unencrypted": StatusUnencrypted,
	}, got)
	assert.Equal(t, StatusSummary{Current: 1, Stale: 1, Unencrypted: 1, MissingSource: 1, MissingSecrets: 2}, result.Summary)
	assert.True(t, result.Pages[0].HasSecret)
	assert.False(t, result.Pages[1].HasSecret)
}

func TestStatusWithoutSecretsFile(t *testing.T) {
	site := newTestSite(t)
	site.page("notes", "<html>a</html>")

	result, err := Status(context.Background(), site.options(""))

	require.NoError(t, err)
	require.Len(t, result.Pages, 1)
	assert.False(t, result.Pages[0].HasSecret)
	assert.Equal(t, 1, result.Summary.MissingSecrets)
}
