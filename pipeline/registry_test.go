package pipeline_test

import (
	"testing"

	"github.com/fwojciec/casefeed/goquery"
	"github.com/fwojciec/casefeed/mock"
	"github.com/fwojciec/casefeed/pipeline"
	"github.com/fwojciec/casefeed/prose"
	"github.com/fwojciec/casefeed/wikicode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRegistry() *pipeline.Registry {
	return pipeline.NewRegistry(goquery.NewWikitable(), wikicode.New(), prose.New())
}

func TestRegistry_Select(t *testing.T) {
	t.Parallel()

	t.Run("table preferred when both markers present", func(t *testing.T) {
		t.Parallel()

		raw := `<table class="wikitable"><tr><td>Authority</td><td>CNIL</td></tr></table>{{DPAdecisionBOX |Authority=CNIL}}`

		s := defaultRegistry().Select(raw)
		require.NotNil(t, s)
		assert.Equal(t, "Wikitable", s.Name())
	})

	t.Run("wikicode selected without a table", func(t *testing.T) {
		t.Parallel()

		raw := `{{DPAdecisionBOX |Authority=CNIL}}`

		s := defaultRegistry().Select(raw)
		require.NotNil(t, s)
		assert.Equal(t, "Wikicode", s.Name())
	})

	t.Run("prose is the terminal fallback", func(t *testing.T) {
		t.Parallel()

		s := defaultRegistry().Select("On 15 March 2024 the authority fined someone.")
		require.NotNil(t, s)
		assert.Equal(t, "Prose", s.Name())

		s = defaultRegistry().Select("")
		require.NotNil(t, s)
		assert.Equal(t, "Prose", s.Name())
	})

	t.Run("empty registry selects nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, pipeline.NewRegistry().Select("anything"))
	})
}

func TestRegistry_Insert(t *testing.T) {
	t.Parallel()

	named := func(name string, matches bool) *mock.Strategy {
		return &mock.Strategy{
			NameFn:     func() string { return name },
			CanParseFn: func(string) bool { return matches },
		}
	}

	t.Run("inserted strategy wins at its position", func(t *testing.T) {
		t.Parallel()

		r := pipeline.NewRegistry(named("a", true), named("b", true))
		r.Insert(0, named("custom", true))

		s := r.Select("raw")
		require.NotNil(t, s)
		assert.Equal(t, "custom", s.Name())
		assert.Len(t, r.Strategies(), 3)
	})

	t.Run("out-of-range positions clamp", func(t *testing.T) {
		t.Parallel()

		r := pipeline.NewRegistry(named("a", false))
		r.Insert(-5, named("first", false))
		r.Insert(99, named("last", true))

		strategies := r.Strategies()
		require.Len(t, strategies, 3)
		assert.Equal(t, "first", strategies[0].Name())
		assert.Equal(t, "last", strategies[2].Name())

		s := r.Select("raw")
		require.NotNil(t, s)
		assert.Equal(t, "last", s.Name())
	})
}
