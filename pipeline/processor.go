package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/casefeed"
)

// Processor runs one feed entry through the extraction pipeline:
// reference extraction, strategy selection, field extraction with
// failure containment, body assembly, normalization, and body
// translation. It holds no cross-entry state and is safe to re-enter
// per entry.
type Processor struct {
	registry   *Registry
	normalizer *Normalizer
	source     casefeed.SourceLocator
	body       casefeed.BodyExtractor
	translator casefeed.BodyTranslator
	logger     *slog.Logger
	now        func() time.Time
}

// NewProcessor creates a Processor. The source locator, body
// extractor, and body translator may be nil; the corresponding fields
// are then left empty.
func NewProcessor(registry *Registry, normalizer *Normalizer, source casefeed.SourceLocator, body casefeed.BodyExtractor, translator casefeed.BodyTranslator, logger *slog.Logger) *Processor {
	return &Processor{
		registry:   registry,
		normalizer: normalizer,
		source:     source,
		body:       body,
		translator: translator,
		logger:     logger,
		now:        time.Now,
	}
}

// ProcessEntry processes one entry end to end and always returns a
// record, never nil: total extraction failure yields the minimal
// fallback record so one bad entry cannot abort a batch.
func (p *Processor) ProcessEntry(ctx context.Context, entry casefeed.FeedEntry) *casefeed.Record {
	raw := entry.Summary

	rec := (*casefeed.Record)(nil)
	strategyName := casefeed.StrategyUnknown

	strategy := p.registry.Select(raw)
	if strategy == nil {
		p.logger.Warn("no strategy matched", "entry", entry.ID)
	} else {
		refs := strategy.ExtractReferences(raw)
		sourceURL := ""
		if p.source != nil {
			sourceURL = p.source.SourceURL(raw)
		}

		extracted, err := p.extract(strategy, raw, sourceURL, refs)
		if err != nil {
			p.logger.Warn("extraction failed", "entry", entry.ID, "strategy", strategy.Name(), "err", err)
		} else {
			rec = extracted
			strategyName = strategy.Name()
			if rec.AuthorityRaw == "" {
				rec.AuthorityRaw = authorityFromTitle(strategy, entry.Title)
			}
			if extractedNothing(rec) {
				p.logger.Warn("extraction yielded no fields", "entry", entry.ID, "strategy", strategy.Name())
				rec = nil
				strategyName = casefeed.StrategyUnknown
			}
		}
	}

	if rec == nil {
		rec = p.fallbackRecord(raw)
	}

	rec.ID = entry.ID
	rec.FromFeed = true

	if p.body != nil {
		body, err := p.body.ExtractBody(raw)
		if err != nil {
			p.logger.Warn("body extraction failed", "entry", entry.ID, "err", err)
		} else {
			rec.BodyText = body
		}
	}

	p.normalizer.Normalize(rec, strategyName)

	if p.translator != nil && rec.BodyText != "" {
		translated, err := p.translator.TranslateBody(ctx, rec.BodyText)
		if err != nil {
			p.logger.Warn("body translation failed, keeping original", "entry", entry.ID, "err", err)
		} else {
			rec.TranslatedBodyText = translated
		}
	}

	return rec
}

// extract invokes the strategy's extractor, converting a panic into an
// error so a misbehaving strategy is contained like any other
// extraction failure.
func (p *Processor) extract(strategy casefeed.Strategy, raw, sourceURL string, refs []string) (rec *casefeed.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = casefeed.Errorf(casefeed.EINTERNAL, "strategy panicked: %v", r)
		}
	}()

	rec, err = strategy.ExtractFields(raw, sourceURL, refs)
	if err == nil && rec == nil {
		err = casefeed.Errorf(casefeed.EUNPROCESSABLE, "strategy returned no record")
	}
	return rec, err
}

// extractedNothing reports whether extraction produced no usable
// field. Such a record is treated like a failed extraction so the
// entry gets the fallback record's distinct filename instead of a
// degenerate synthesized one.
func extractedNothing(rec *casefeed.Record) bool {
	return rec.AuthorityRaw == "" &&
		rec.CountryRaw == "" &&
		rec.CaseNumber == "" &&
		rec.DecisionTypeRaw == "" &&
		rec.OutcomeRaw == "" &&
		rec.FineAmountRaw == "" &&
		rec.DateRaw == "" &&
		rec.PartyName == "" &&
		rec.SourceURL == "" &&
		len(rec.LegalReferences) == 0
}

// authorityFromTitle recovers the authority from the entry title when
// the strategy supports it (the prose fallback brackets the authority
// in its titles).
func authorityFromTitle(strategy casefeed.Strategy, title string) string {
	s, ok := strategy.(interface{ ExtractAuthorityFromTitle(string) string })
	if !ok || title == "" {
		return ""
	}
	return s.ExtractAuthorityFromTitle(title)
}

// fallbackRecord is the minimal record substituted on total extraction
// failure: a failure citation sentinel plus a collision-resistant
// generated filename.
func (p *Processor) fallbackRecord(raw string) *casefeed.Record {
	return &casefeed.Record{
		LegalReferences:  []string{casefeed.ReferencesFailure},
		ProposedFilename: FallbackFilename(p.now(), raw),
	}
}

// FallbackFilename generates a timestamp-based name for entries that
// could not be extracted. The body hash keeps names distinct when
// several entries fail within the same second.
func FallbackFilename(t time.Time, raw string) string {
	return fmt.Sprintf("GDPRHub-%s-%x", t.Format("20060102150405"), xxhash.Sum64String(raw))
}
