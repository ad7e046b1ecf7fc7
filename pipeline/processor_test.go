package pipeline_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/casefeed"
	"github.com/fwojciec/casefeed/goquery"
	"github.com/fwojciec/casefeed/mock"
	"github.com/fwojciec/casefeed/pipeline"
	"github.com/fwojciec/casefeed/prose"
	"github.com/fwojciec/casefeed/translate"
	"github.com/fwojciec/casefeed/wikicode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const decisionTableEntry = `<table class="wikitable">
<tr><th>Authority:</th><td>CNIL</td></tr>
<tr><th>Jurisdiction:</th><td>France</td></tr>
<tr><th>Case Number/Name:</th><td>SAN-2023-001</td></tr>
<tr><th>Type:</th><td>Complaint</td></tr>
<tr><th>Outcome:</th><td>Violation Found</td></tr>
<tr><th>Decided:</th><td>10.01.2023</td></tr>
<tr><th>Fine:</th><td>€100,000</td></tr>
<tr><th>Parties:</th><td>Acme</td></tr>
<tr><th>Relevant Law:</th><td><a href="#a5">Article 5 GDPR</a></td></tr>
<tr><th>Original Source:</th><td><a href="https://example.org/decision">Link</a></td></tr>
</table>`

func realNormalizer() *pipeline.Normalizer {
	tr := translate.NewTranslator()
	return pipeline.NewNormalizer(tr, tr, tr, discardLogger())
}

func TestProcessor_ProcessEntry(t *testing.T) {
	t.Parallel()

	t.Run("decision table entry end to end", func(t *testing.T) {
		t.Parallel()

		registry := pipeline.NewRegistry(goquery.NewWikitable(), wikicode.New(), prose.New())
		p := pipeline.NewProcessor(registry, realNormalizer(), goquery.NewSourceLocator(), nil, nil, discardLogger())

		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{
			ID:      "https://gdprhub.eu/index.php?title=CNIL_SAN-2023-001",
			Summary: decisionTableEntry,
		})

		assert.Equal(t, "Wikitable", rec.StrategyUsed)
		assert.True(t, rec.FromFeed)
		assert.Equal(t, "https://gdprhub.eu/index.php?title=CNIL_SAN-2023-001", rec.ID)
		assert.Equal(t, "https://example.org/decision", rec.SourceURL)
		assert.Equal(t, "100000", rec.FineAmount)
		assert.Equal(t, casefeed.OutcomeFine, rec.Outcome)
		assert.Equal(t, "2023-01-10", rec.ISODate)
		assert.Equal(t, "10 janvier 2023", rec.DisplayDate)
		assert.Equal(t, []string{"RGPD5"}, rec.LegalReferences)
		assert.Equal(t, casefeed.CategorySanctionCNIL, rec.Category)
		assert.Equal(t, "CNIL, 10 janvier 2023, n° SAN-2023-001", rec.ProposedFilename)
		require.NoError(t, rec.Validate())
	})

	t.Run("strategy error yields the fallback record", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Strategy{
			NameFn:     func() string { return "Failing" },
			CanParseFn: func(string) bool { return true },
			ExtractFieldsFn: func(string, string, []string) (*casefeed.Record, error) {
				return nil, casefeed.Errorf(casefeed.EUNPROCESSABLE, "bad input")
			},
			ExtractReferencesFn: func(string) []string { return nil },
		}

		p := pipeline.NewProcessor(pipeline.NewRegistry(failing), realNormalizer(), nil, nil, nil, discardLogger())
		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{ID: "entry-1", Summary: "garbage"})

		assert.Equal(t, casefeed.StrategyUnknown, rec.StrategyUsed)
		assert.Equal(t, []string{casefeed.ReferencesFailure}, rec.LegalReferences)
		assert.True(t, strings.HasPrefix(rec.ProposedFilename, "GDPRHub-"))
		assert.True(t, rec.FromFeed)
	})

	t.Run("panicking strategy is contained", func(t *testing.T) {
		t.Parallel()

		panicking := &mock.Strategy{
			NameFn:              func() string { return "Panicking" },
			CanParseFn:          func(string) bool { return true },
			ExtractFieldsFn:     func(string, string, []string) (*casefeed.Record, error) { panic("boom") },
			ExtractReferencesFn: func(string) []string { return nil },
		}

		p := pipeline.NewProcessor(pipeline.NewRegistry(panicking), realNormalizer(), nil, nil, nil, discardLogger())
		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{ID: "entry-2", Summary: "boom input"})

		assert.Equal(t, casefeed.StrategyUnknown, rec.StrategyUsed)
		assert.Equal(t, []string{casefeed.ReferencesFailure}, rec.LegalReferences)
	})

	t.Run("empty registry yields the fallback record", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewProcessor(pipeline.NewRegistry(), realNormalizer(), nil, nil, nil, discardLogger())
		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{ID: "entry-3", Summary: "text"})

		assert.Equal(t, casefeed.StrategyUnknown, rec.StrategyUsed)
		assert.Equal(t, []string{casefeed.ReferencesFailure}, rec.LegalReferences)
	})

	t.Run("prose extraction yielding nothing falls back", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewProcessor(pipeline.NewRegistry(prose.New()), realNormalizer(), nil, nil, nil, discardLogger())
		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{ID: "entry-empty", Summary: "nothing recognizable"})

		assert.Equal(t, casefeed.StrategyUnknown, rec.StrategyUsed)
		assert.Equal(t, []string{casefeed.ReferencesFailure}, rec.LegalReferences)
		assert.True(t, strings.HasPrefix(rec.ProposedFilename, "GDPRHub-"))
	})

	t.Run("prose entry recovers the authority from the title", func(t *testing.T) {
		t.Parallel()

		registry := pipeline.NewRegistry(prose.New())
		p := pipeline.NewProcessor(registry, realNormalizer(), nil, nil, nil, discardLogger())

		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{
			ID:      "entry-title",
			Title:   "Fine for unlawful marketing (CNIL)",
			Summary: "On 15 March 2024 the authority fined the company €50,000.",
		})

		assert.Equal(t, "Prose", rec.StrategyUsed)
		assert.Equal(t, "CNIL", rec.AuthorityRaw)
		assert.Equal(t, "50000", rec.FineAmount)
	})

	t.Run("body extracted and translated after normalization", func(t *testing.T) {
		t.Parallel()

		registry := pipeline.NewRegistry(prose.New())
		body := &mock.BodyExtractor{
			ExtractBodyFn: func(raw string) (string, error) { return "# Faits\nextracted", nil },
		}
		translator := &mock.BodyTranslator{
			TranslateBodyFn: func(_ context.Context, text string) (string, error) {
				return "FR: " + text, nil
			},
		}

		p := pipeline.NewProcessor(registry, realNormalizer(), nil, body, translator, discardLogger())
		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{ID: "entry-4", Summary: "prose text"})

		assert.Equal(t, "# Faits\nextracted", rec.BodyText)
		assert.Equal(t, "FR: # Faits\nextracted", rec.TranslatedBodyText)
	})

	t.Run("translation failure keeps the original body", func(t *testing.T) {
		t.Parallel()

		registry := pipeline.NewRegistry(prose.New())
		body := &mock.BodyExtractor{
			ExtractBodyFn: func(string) (string, error) { return "original body", nil },
		}
		translator := &mock.BodyTranslator{
			TranslateBodyFn: func(context.Context, string) (string, error) {
				return "", casefeed.Errorf(casefeed.EINTERNAL, "api down")
			},
		}

		p := pipeline.NewProcessor(registry, realNormalizer(), nil, body, translator, discardLogger())
		rec := p.ProcessEntry(context.Background(), casefeed.FeedEntry{ID: "entry-5", Summary: "prose text"})

		assert.Equal(t, "original body", rec.BodyText)
		assert.Equal(t, "", rec.TranslatedBodyText)
	})
}

func TestFallbackFilename(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)

	a := pipeline.FallbackFilename(at, "body one")
	b := pipeline.FallbackFilename(at, "body two")

	assert.True(t, strings.HasPrefix(a, "GDPRHub-20240315123045-"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, pipeline.FallbackFilename(at, "body one"))
}
