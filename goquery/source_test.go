package goquery_test

import (
	"testing"

	"github.com/fwojciec/casefeed"
	"github.com/fwojciec/casefeed/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure SourceLocator implements casefeed.SourceLocator at compile time.
var _ casefeed.SourceLocator = (*goquery.SourceLocator)(nil)

func TestSourceLocator_SourceURL(t *testing.T) {
	t.Parallel()

	t.Run("returns the first link after the original source header", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewSourceLocator()
		assert.Equal(t, "https://example.org/decision", l.SourceURL(decisionTable))
	})

	t.Run("no source row returns empty", func(t *testing.T) {
		t.Parallel()

		html := `<table class="wikitable"><tr><th>Authority:</th><td>CNIL</td></tr></table>`

		l := goquery.NewSourceLocator()
		assert.Equal(t, "", l.SourceURL(html))
	})

	t.Run("no table returns empty", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewSourceLocator()
		assert.Equal(t, "", l.SourceURL("<p>prose</p>"))
	})
}
