package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *Main {
	t.Helper()
	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := newTestMain(t).Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scrape")
	})

	t.Run("providers lists registered scrapers", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := newTestMain(t).Run(context.Background(), []string{"providers"}, &stdout, &stderr)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "OpenAI")
		assert.Contains(t, output, "Anthropic")
		assert.Contains(t, output, "AWS Bedrock")
		assert.Contains(t, output, "enabled")
	})

	t.Run("list on empty database", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := newTestMain(t).Run(context.Background(), []string{"list"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No deprecations recorded")
	})

	t.Run("unknown provider errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := newTestMain(t).Run(context.Background(), []string{"scrape", "--dry-run", "Cohere"}, &stdout, &stderr)
		require.Error(t, err)
	})
}
