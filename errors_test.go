package casefeed_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/casefeed"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", casefeed.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := casefeed.Errorf(casefeed.EINVALID, "bad input %q", "x")
		assert.Equal(t, casefeed.EINVALID, casefeed.ErrorCode(err))
		assert.Equal(t, `bad input "x"`, casefeed.ErrorMessage(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", casefeed.Errorf(casefeed.ENOTFOUND, "missing"))
		assert.Equal(t, casefeed.ENOTFOUND, casefeed.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, casefeed.EINTERNAL, casefeed.ErrorCode(errors.New("boom")))
		assert.Equal(t, "Internal error.", casefeed.ErrorMessage(errors.New("boom")))
	})
}
