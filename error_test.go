package deprecations_test

import (
	"errors"
	"fmt"
	"testing"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := deprecations.Errorf(deprecations.ENOTFOUND, "no strategy for %q", "cohere")
		assert.Equal(t, deprecations.ENOTFOUND, deprecations.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("scrape failed: %w", deprecations.Errorf(deprecations.EUNAVAILABLE, "retries exhausted"))
		assert.Equal(t, deprecations.EUNAVAILABLE, deprecations.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, deprecations.EINTERNAL, deprecations.ErrorCode(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, deprecations.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := deprecations.Errorf(deprecations.EINVALID, "no date in %q", "TBD")
		assert.Equal(t, `no date in "TBD"`, deprecations.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error", deprecations.ErrorMessage(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, deprecations.ErrorMessage(nil))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := deprecations.Errorf(deprecations.EEXTRACTION, "walk failed")
	assert.Equal(t, "deprecations error: code=extraction message=walk failed", err.Error())
}
