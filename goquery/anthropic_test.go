package goquery_test

import (
	"testing"

	"github.com/leblancfg/deprecations-rss/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicStrategy_ExtractStructured(t *testing.T) {
	t.Parallel()

	t.Run("extracts rows from the model status table", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2>Model status</h2>
	<table>
		<tr><th>Model</th><th>State</th><th>Deprecated</th><th>Retired</th></tr>
		<tr><td>claude-1.3</td><td>Retired</td><td>2024-06-28</td><td>2024-11-06</td></tr>
		<tr><td>claude-3-opus-20240229</td><td>Active</td><td>N/A</td><td>N/A</td></tr>
	</table>
</main>`

		items, err := goquery.NewAnthropicStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "Anthropic", item.Provider)
		assert.Equal(t, "claude-1.3", item.ModelName)
		assert.Equal(t, "2024-06-28", item.AnnouncementDate)
		assert.Equal(t, "2024-11-06", item.ShutdownDate)
		assert.Contains(t, item.Context, "claude-1.3")
		assert.Contains(t, item.URL, "#claude-1.3")
	})

	t.Run("extracts rows from per-announcement tables with hedged dates", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2>2025-01-21: Claude 2 models</h2>
	<table>
		<tr><th>Retirement Date</th><th>Deprecated Model</th><th>Recommended Replacement</th></tr>
		<tr><td>Not sooner than 2025-07-21</td><td>claude-2.0</td><td>claude-3-5-sonnet-20241022</td></tr>
		<tr><td>Not sooner than 2025-07-21</td><td>claude-2.1</td><td>—</td></tr>
	</table>
</main>`

		items, err := goquery.NewAnthropicStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "claude-2.0", items[0].ModelName)
		assert.Equal(t, "2025-07-21", items[0].ShutdownDate)
		assert.Equal(t, "2025-01-21", items[0].AnnouncementDate)
		assert.Equal(t, "claude-3-5-sonnet-20241022", items[0].ReplacementModel)

		assert.Equal(t, "claude-2.1", items[1].ModelName)
		assert.Empty(t, items[1].ReplacementModel)
	})

	t.Run("deduplicates the same model across tables", func(t *testing.T) {
		t.Parallel()

		html := `<main>
	<h2>Overview</h2>
	<table>
		<tr><th>Model</th><th>State</th><th>Deprecated</th><th>Retired</th></tr>
		<tr><td>claude-instant-1.2</td><td>Retired</td><td>2024-06-28</td><td>2024-11-06</td></tr>
	</table>
	<h2>2024-06-28: Legacy models</h2>
	<table>
		<tr><th>Retirement Date</th><th>Deprecated Model</th><th>Recommended Replacement</th></tr>
		<tr><td>2024-11-06</td><td>claude-instant-1.2</td><td>claude-3-haiku-20240307</td></tr>
	</table>
</main>`

		items, err := goquery.NewAnthropicStrategy().ExtractStructured(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "claude-instant-1.2", items[0].ModelID)
	})

	t.Run("returns empty when content region is absent", func(t *testing.T) {
		t.Parallel()

		items, err := goquery.NewAnthropicStrategy().ExtractStructured(`<div><p>no main element</p></div>`)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
