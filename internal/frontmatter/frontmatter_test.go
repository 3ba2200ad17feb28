package frontmatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logger "github.com/PolarWolf314/slp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layout = "shareable-link-protected"

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxLines int
		want     bool
	}{
		{
			name:    "exact layout",
			content: "---\ntitle: Notes\nlayout: shareable-link-protected\n---\nbody\n",
			want:    true,
		},
		{
			name:    "value containing the layout",
			content: "---\nlayout: \"shareable-link-protected-wide\"\n---\n",
			want:    true,
		},
		{
			name:    "key containing layout",
			content: "---\npage_layout: shareable-link-protected\n---\n",
			want:    true,
		},
		{
			name:    "other layout",
			content: "---\nlayout: post\n---\n",
			want:    false,
		},
		{
			name:    "no front matter",
			content: "layout: shareable-link-protected\n",
			want:    false,
		},
		{
			name:    "layout after closing delimiter",
			content: "---\ntitle: x\n---\nlayout: shareable-link-protected\n",
			want:    false,
		},
		{
			name:    "delimiter with surrounding whitespace",
			content: "  ---  \nlayout: shareable-link-protected\n---\n",
			want:    true,
		},
		{
			name:    "no trailing newline",
			content: "---\nlayout: shareable-link-protected",
			want:    true,
		},
		{
			name:    "CRLF line endings",
			content: "---\r\nlayout: shareable-link-protected\r\n---\r\n",
			want:    true,
		},
		{
			name:     "within line cap",
			content:  "---\nlayout: shareable-link-protected\n---\n",
			maxLines: 2,
			want:     true,
		},
		{
			name:     "beyond line cap",
			content:  "---\n" + strings.Repeat("k: v\n", 50) + "layout: shareable-link-protected\n---\n",
			maxLines: 50,
			want:     false,
		},
		{
			name:     "negative cap reads everything",
			content:  "---\n" + strings.Repeat("k: v\n", 100) + "layout: shareable-link-protected\n---\n",
			maxLines: -1,
			want:     true,
		},
		{
			name:    "empty file",
			content: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(strings.NewReader(tt.content), layout, tt.maxLines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasLayoutMissingFile(t *testing.T) {
	_, err := HasLayout(filepath.Join(t.TempDir(), "index.md"), layout, 50)

	assert.Error(t, err)
}

func TestScannerHasLayoutLogsReadFailure(t *testing.T) {
	var errOut bytes.Buffer
	s := Scanner{Layout: layout, MaxLines: 50, Logger: logger.Logger{Err: &errOut}}

	// A directory cannot be read as a file.
	dir := filepath.Join(t.TempDir(), "index.md")
	require.NoError(t, os.Mkdir(dir, 0755))

	assert.False(t, s.HasLayout(dir))
	assert.Contains(t, errOut.String(), "Error reading")
}

func writePage(t *testing.T, root, rel, layoutValue string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	content := fmt.Sprintf("---\ntitle: page\nlayout: %s\n---\n<p>hi</p>\n", layoutValue)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindProtectedPages(t *testing.T) {
	root := t.TempDir()
	notes := writePage(t, root, "notes/index.md", layout)
	deep := writePage(t, root, "a/b/trip/index.html", layout)
	writePage(t, root, "blog/index.md", "post")
	writePage(t, root, "other/page.md", layout)
	writePage(t, root, "_site/notes/index.html", layout)

	s := Scanner{Layout: layout, MaxLines: 50, Skip: []string{"_site/**"}}
	pages, err := s.FindProtectedPages(root)

	require.NoError(t, err)
	assert.Equal(t, []string{deep, notes}, pages)
}

func TestFindProtectedPagesWithoutSkip(t *testing.T) {
	root := t.TempDir()
	built := writePage(t, root, "_site/notes/index.html", layout)

	pages, err := Scanner{Layout: layout}.FindProtectedPages(root)

	require.NoError(t, err)
	assert.Equal(t, []string{built}, pages)
}

func TestFindProtectedPagesErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Scanner{Layout: layout}.FindProtectedPages(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		_, err := Scanner{Layout: layout}.FindProtectedPages(file)
		assert.Error(t, err)
	})

	t.Run("bad skip pattern", func(t *testing.T) {
		_, err := Scanner{Layout: layout, Skip: []string{"[unclosed"}}.FindProtectedPages(t.TempDir())
		assert.ErrorContains(t, err, "invalid skip pattern")
	})
}
