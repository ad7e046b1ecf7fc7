// Package prose implements the terminal fallback strategy: targeted
// patterns over free text, explicitly allowed to return a sparse
// record.
package prose

import (
	"regexp"
	"strings"

	"github.com/fwojciec/casefeed"
)

var (
	// fineRe matches a currency-prefixed numeral, e.g. "€50,000".
	fineRe = regexp.MustCompile(`€\s?([\d,]+)`)

	// dateRe matches a loosely-formatted decision date phrase, e.g.
	// "On 15 March 2024".
	dateRe = regexp.MustCompile(`On (\d{1,2} \w+ \d{4})`)

	// authorityRe matches an authority name bracketed in the entry
	// title, e.g. "... (CNIL)".
	authorityRe = regexp.MustCompile(`\((.+?)\)`)
)

// Ensure Strategy implements casefeed.Strategy at compile time.
var _ casefeed.Strategy = (*Strategy)(nil)

// Strategy is the best-effort prose fallback. It must be registered
// last: CanParse always reports true.
type Strategy struct{}

// New creates a new prose Strategy.
func New() *Strategy {
	return &Strategy{}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return "Prose"
}

// CanParse always reports true; prose is the terminal fallback.
func (s *Strategy) CanParse(raw string) bool {
	return true
}

// ExtractFields probes the text for a fine amount and a decision date.
// Fields that do not match are left empty.
func (s *Strategy) ExtractFields(raw, sourceURL string, refs []string) (*casefeed.Record, error) {
	rec := &casefeed.Record{}

	if m := fineRe.FindStringSubmatch(raw); m != nil {
		rec.FineAmountRaw = m[1]
	}
	if m := dateRe.FindStringSubmatch(raw); m != nil {
		rec.DateRaw = m[1]
	}

	rec.LegalReferences = refs
	if sourceURL != "" {
		rec.SourceURL = sourceURL
	}
	return rec, nil
}

// ExtractAuthorityFromTitle recovers an authority name bracketed in
// the entry title, or "" when none is present.
func (s *Strategy) ExtractAuthorityFromTitle(title string) string {
	if m := authorityRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractReferences is a documented gap for prose entries: no citation
// grammar exists for free text, so it always returns an empty slice.
func (s *Strategy) ExtractReferences(raw string) []string {
	return nil
}
