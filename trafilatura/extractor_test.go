package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/leblancfg/deprecations-rss/trafilatura"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts main text without boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Deprecations - OpenAI API</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Deprecations</h1>
<p>On September 15, 2025, gpt-4-0314 will be shut down. We recommend migrating to gpt-4o.</p>
<p>Deprecated models remain available for a minimum of 6 months.</p>
</article>
<aside>Sidebar links</aside>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		title, text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.NotEmpty(t, title)
		assert.Contains(t, text, "gpt-4-0314 will be shut down")
		assert.Contains(t, text, "minimum of 6 months")
		assert.NotContains(t, text, "Sidebar links")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, _, err := ext.ExtractText("")
		require.Error(t, err)
		assert.Equal(t, deprecations.EINVALID, deprecations.ErrorCode(err))
	})
}
