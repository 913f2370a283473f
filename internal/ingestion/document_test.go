package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadDocument_PlainText(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Jane Doe\n\n\n\nSkills:   Go,  Docker\n")

	text, meta, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSkills: Go, Docker", text)
	assert.Equal(t, "text", meta.Format)
	assert.Equal(t, path, meta.SourcePath)
	assert.Equal(t, len(text), meta.CharCount)
	assert.NotEmpty(t, meta.Hash)
}

func TestReadDocument_Markdown(t *testing.T) {
	path := writeTempFile(t, "jd.md", "# Backend Engineer\n- Go\n- PostgreSQL\n")

	text, meta, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "# Backend Engineer\n- Go\n- PostgreSQL", text)
	assert.Equal(t, "text", meta.Format)
}

func TestReadDocument_HTML(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
		<nav>Home | Jobs</nav>
		<h1>Backend Engineer</h1>
		<p>We are hiring.</p>
		<ul><li>Go</li><li>PostgreSQL</li></ul>
		<script>trackPageView();</script>
	</body></html>`
	path := writeTempFile(t, "jd.html", html)

	text, meta, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "html", meta.Format)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "We are hiring.")
	assert.Contains(t, text, "Go")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, _, err := ReadDocument(filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestReadDocument_EmptyDocument(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "   \n\n  ")

	_, _, err := ReadDocument(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadDocument_CorruptPDF(t *testing.T) {
	path := writeTempFile(t, "broken.pdf", "this is not a pdf")

	_, _, err := ReadDocument(path)

	assert.Error(t, err)
}
