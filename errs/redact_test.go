package errs_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"moviefetch/errs"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	t.Run("strips query from request url", func(t *testing.T) {
		err := &url.Error{
			Op:  "Get",
			URL: "https://api.example.com/3/movie/popular?api_key=SECRET&page=2",
			Err: errors.New("dial tcp: connection refused"),
		}

		redacted := errs.Redact(err)

		assert.Equal(t, `Get "https://api.example.com/3/movie/popular": dial tcp: connection refused`, redacted.Error())
		assert.NotContains(t, redacted.Error(), "SECRET")
		assert.Contains(t, err.Error(), "SECRET", "original error must stay untouched")
	})

	t.Run("finds url error in the chain", func(t *testing.T) {
		err := fmt.Errorf("page 3: %w", &url.Error{
			Op:  "Get",
			URL: "https://api.example.com/3/search/movie?api_key=SECRET&query=x&page=3",
			Err: context.Canceled,
		})

		redacted := errs.Redact(err)

		assert.NotContains(t, redacted.Error(), "SECRET")
		assert.ErrorIs(t, redacted, context.Canceled)
	})

	t.Run("keeps errors without query", func(t *testing.T) {
		plain := errors.New("boom")
		noQuery := &url.Error{Op: "Get", URL: "https://api.example.com/3", Err: plain}

		assert.Same(t, plain, errs.Redact(plain))
		assert.Equal(t, error(noQuery), errs.Redact(noQuery))
		assert.Nil(t, errs.Redact(nil))
	})
}
