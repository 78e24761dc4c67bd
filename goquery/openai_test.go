package goquery_test

import (
	"testing"

	"github.com/leblancfg/deprecations-rss/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExtractor is a canned TextExtractor for unstructured-pass tests.
type stubExtractor struct {
	title string
	text  string
	err   error
}

func (s *stubExtractor) ExtractText(html string) (string, string, error) {
	return s.title, s.text, s.err
}

func TestOpenAIStrategy_ExtractStructured(t *testing.T) {
	t.Parallel()

	t.Run("extracts shutdown table rows under dated headings", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2 id="2025-04-28-o1">2025-04-28: o1-preview and o1-mini</h2>
	<p>We recommend migrating to newer reasoning models.</p>
	<table>
		<tr><th>Shutdown date</th><th>Model</th><th>Recommended replacement</th></tr>
		<tr><td>2025-07-28</td><td>o1-preview</td><td>o3</td></tr>
		<tr><td>2025-10-27</td><td>o1-mini</td><td>o4-mini</td></tr>
	</table>
</main>`

		items, err := goquery.NewOpenAIStrategy(nil).ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "OpenAI", items[0].Provider)
		assert.Equal(t, "o1-preview", items[0].ModelName)
		assert.Equal(t, "2025-04-28", items[0].AnnouncementDate)
		assert.Equal(t, "2025-07-28", items[0].ShutdownDate)
		assert.Equal(t, "o3", items[0].ReplacementModel)
		assert.Contains(t, items[0].Context, "o1-preview")
		assert.Contains(t, items[0].URL, "#2025-04-28-o1")

		assert.Equal(t, "o1-mini", items[1].ModelName)
		assert.Equal(t, "2025-10-27", items[1].ShutdownDate)
	})

	t.Run("fans out models joined by and in one cell", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2>2024-06-06: GPT-4-32K models</h2>
	<table>
		<tr><th>Shutdown date</th><th>Model / system</th><th>Recommended replacement</th></tr>
		<tr><td>2025-06-06</td><td>gpt-4-32k and gpt-4-32k-0613</td><td>gpt-4o</td></tr>
	</table>
</main>`

		items, err := goquery.NewOpenAIStrategy(nil).ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "gpt-4-32k", items[0].ModelID)
		assert.Equal(t, "gpt-4-32k-0613", items[1].ModelID)
		for _, item := range items {
			assert.Equal(t, "2024-06-06", item.AnnouncementDate)
			assert.Equal(t, "2025-06-06", item.ShutdownDate)
			assert.Equal(t, "gpt-4o", item.ReplacementModel)
		}
	})

	t.Run("extracts from prose when a section has no table", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2>2025-06-01: gpt-4-32k retirement</h2>
	<p>gpt-4-32k will be deprecated on June 6, 2025 in the API.</p>
</main>`

		items, err := goquery.NewOpenAIStrategy(nil).ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "gpt-4-32k", items[0].ModelName)
		assert.Equal(t, "2025-06-01", items[0].AnnouncementDate)
		assert.Equal(t, "2025-06-06", items[0].ShutdownDate)
		assert.Contains(t, items[0].Context, "gpt-4-32k")
	})

	t.Run("falls back to the section title models when prose names none", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h3>2025-04-28: o1-preview and o1-mini</h3>
	<p>These reasoning models are reaching end of life.</p>
</main>`

		items, err := goquery.NewOpenAIStrategy(nil).ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "o1-preview", items[0].ModelName)
		assert.Equal(t, "o1-mini", items[1].ModelName)
	})

	t.Run("ignores undated headings", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2>Deprecation policy</h2>
	<p>gpt-4-0314 will be deprecated eventually.</p>
</main>`

		items, err := goquery.NewOpenAIStrategy(nil).ExtractStructured(html)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestOpenAIStrategy_ExtractUnstructured(t *testing.T) {
	t.Parallel()

	t.Run("finds dated model mentions in extracted text", func(t *testing.T) {
		t.Parallel()

		extractor := &stubExtractor{
			title: "Deprecations",
			text:  "Intro paragraph.\ngpt-3.5-turbo-0301 will be retired on June 13, 2024.\nUnrelated line.",
		}

		items, err := goquery.NewOpenAIStrategy(extractor).ExtractUnstructured("<html></html>")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "gpt-3.5-turbo-0301", items[0].ModelID)
		assert.Equal(t, "2024-06-13", items[0].ShutdownDate)
		assert.Contains(t, items[0].Context, "gpt-3.5-turbo-0301")
	})

	t.Run("skips mentions without a resolvable date", func(t *testing.T) {
		t.Parallel()

		extractor := &stubExtractor{text: "gpt-4-0314 will be deprecated at some point."}

		items, err := goquery.NewOpenAIStrategy(extractor).ExtractUnstructured("<html></html>")

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("falls back to tag stripping without an extractor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>o1-preview will be removed by April 28, 2025.</p></body></html>`

		items, err := goquery.NewOpenAIStrategy(nil).ExtractUnstructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "o1-preview", items[0].ModelID)
		assert.Equal(t, "2025-04-28", items[0].ShutdownDate)
	})
}
