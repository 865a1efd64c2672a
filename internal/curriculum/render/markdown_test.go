package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	md := NewMarkdown()

	html, err := md.Render("# Step 1\n\nAdd an `h1` element with the text `Hello World`.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Step 1</h1>")
	assert.Contains(t, html, "<code>h1</code>")
}

func TestRenderEscapesRawHTML(t *testing.T) {
	md := NewMarkdown()

	html, err := md.Render("before <script>alert(1)</script> after")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderGFMTables(t *testing.T) {
	md := NewMarkdown()

	html, err := md.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestRenderEmpty(t *testing.T) {
	md := NewMarkdown()

	html, err := md.Render("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
