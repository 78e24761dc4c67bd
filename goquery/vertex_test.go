package goquery_test

import (
	"testing"

	"github.com/leblancfg/deprecations-rss/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexStrategy_ExtractStructured(t *testing.T) {
	t.Parallel()

	t.Run("extracts models from a lifecycle table", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h2 id="lifecycle">Model lifecycle</h2>
	<p>Deprecated: June 24, 2025</p>
	<table>
		<tr><th>Model</th><th>Status</th><th>Date</th></tr>
		<tr><td>text-bison@001</td><td>Deprecated</td><td>January 15, 2026</td></tr>
		<tr><td>chat-bison@002</td><td>Active</td><td></td></tr>
	</table>
</article>`

		items, err := goquery.NewVertexStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Google Vertex AI", items[0].Provider)
		assert.Equal(t, "text-bison@001", items[0].ModelID)
		assert.Equal(t, "text-bison@001", items[0].ModelName)
		assert.Equal(t, "2025-06-24", items[0].AnnouncementDate)
		assert.Equal(t, "2026-01-15", items[0].ShutdownDate)
		assert.Contains(t, items[0].Context, items[0].ModelName)
		assert.Contains(t, items[0].URL, "#lifecycle")
	})

	t.Run("extracts models from list items with lifecycle vocabulary", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h3 id="deprecated-models">Deprecated models</h3>
	<ul>
		<li>chat-bison@002 will be discontinued on October 1, 2025</li>
		<li>code-gecko@001 remains generally available</li>
	</ul>
</article>`

		items, err := goquery.NewVertexStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "chat-bison@002", items[0].ModelID)
		assert.Equal(t, "2025-10-01", items[0].ShutdownDate)
		assert.Contains(t, items[0].Context, "chat-bison@002")
	})

	t.Run("ignores sections without lifecycle headings", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h2>Pricing</h2>
	<p>text-bison@001 costs less than gemini-1.5-pro.</p>
</article>`

		items, err := goquery.NewVertexStrategy().ExtractStructured(html)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("falls back to the section title when dates exist but no model is named", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h3 id="imagen">Imagen availability</h3>
	<p>Support ends: March 1, 2026</p>
</article>`

		items, err := goquery.NewVertexStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Imagen", items[0].ModelName)
		assert.Equal(t, "imagen", items[0].ModelID)
		assert.Equal(t, "2026-03-01", items[0].ShutdownDate)
		assert.Contains(t, items[0].Context, "Imagen")
	})

	t.Run("suppresses the fallback when a model already consumed the section", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h3>Deprecated models</h3>
	<ul>
		<li>chat-bison@002 is deprecated and retires on October 1, 2025</li>
	</ul>
</article>`

		items, err := goquery.NewVertexStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "chat-bison@002", items[0].ModelID)
	})

	t.Run("is idempotent on identical input", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h2>Model lifecycle</h2>
	<p>Deprecated: June 24, 2025</p>
	<table>
		<tr><th>Model</th><th>Status</th><th>Date</th></tr>
		<tr><td>text-bison@001</td><td>Deprecated</td><td>January 15, 2026</td></tr>
	</table>
</article>`

		s := goquery.NewVertexStrategy()
		first, err := s.ExtractStructured(html)
		require.NoError(t, err)
		second, err := s.ExtractStructured(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
