package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/casefeed"
)

// Normalizer is the shared post-processing stage run after every
// extraction, regardless of the producing strategy. It fills derived
// fields and fixes up raw ones. Normalization is idempotent and never
// fails as a whole: a step that cannot compute leaves its field at the
// prior value and logs a warning.
type Normalizer struct {
	countries   casefeed.CountryTranslator
	types       casefeed.DecisionTypeTranslator
	authorities casefeed.AuthorityTranslator
	logger      *slog.Logger
	now         func() time.Time
}

// NewNormalizer creates a Normalizer with the given translation
// collaborators. The logger must not be nil.
func NewNormalizer(countries casefeed.CountryTranslator, types casefeed.DecisionTypeTranslator, authorities casefeed.AuthorityTranslator, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		countries:   countries,
		types:       types,
		authorities: authorities,
		logger:      logger,
		now:         time.Now,
	}
}

// Normalize finalizes rec in place and returns it. Step order matters:
// the outcome tag depends on the cleaned fine amount, the display date
// on the ISO date, and the filename on the translated authority and
// display date.
func (n *Normalizer) Normalize(rec *casefeed.Record, strategy string) *casefeed.Record {
	// Authority cleanup. A missing authority stays at the explicit
	// placeholder, never empty.
	if rec.AuthorityRaw == "" || rec.AuthorityRaw == casefeed.AuthorityUnknown {
		rec.AuthorityRaw = casefeed.AuthorityUnknown
	} else {
		rec.AuthorityRaw = casefeed.StripAuthorityQualifier(rec.AuthorityRaw)
	}

	// Country and decision-type normalization.
	if rec.CountryRaw != "" {
		rec.Country = n.countries.TranslateCountry(rec.CountryRaw)
	}
	rec.DecisionType = n.types.TranslateDecisionType(rec.DecisionTypeRaw)

	// Fine cleanup, then the outcome tag. The tag is only valid with a
	// purely numeric amount, so a discarded fine clears it.
	rec.FineAmount = cleanFineAmount(rec.FineAmountRaw)
	if rec.FineAmount != "" {
		rec.Outcome = casefeed.OutcomeFine
	} else {
		rec.Outcome = ""
		if rec.FineAmountRaw != "" && !isNA(rec.FineAmountRaw) {
			n.logger.Warn("discarding non-numeric fine amount", "fine", rec.FineAmountRaw)
		}
	}

	// Dates. Both derive from the raw date on every run, so the
	// sentinel path and the display form cannot drift.
	rec.ISODate = casefeed.ISODate(rec.DateRaw)
	rec.DisplayDate = casefeed.DisplayDate(rec.ISODate)

	// Category tagging off the regulator code.
	rec.Category = ""
	if code, ok := n.authorities.RegulatorCode(rec.AuthorityRaw); ok && code == "CNIL" {
		rec.Category = casefeed.CategorySanctionCNIL
	}

	// Authority translation. The raw field is retained alongside.
	rec.AuthorityTranslated = n.authorities.TranslateFull(rec.AuthorityRaw)
	rec.AuthorityAcronym = n.authorities.TranslateAcronym(rec.AuthorityRaw)

	// Party-name cleanup for downstream title assembly.
	rec.PartyName = cleanPartyName(rec.PartyName)

	// Filename synthesis. A pre-set filename (the fallback path) is
	// kept as-is.
	if rec.ProposedFilename == "" {
		rec.ProposedFilename = fmt.Sprintf("%s, %s, n° %s", rec.AuthorityAcronym, rec.DisplayDate, rec.CaseNumber)
	}

	if rec.CreatedAt == "" {
		rec.CreatedAt = n.now().Format("2006-01-02")
	}

	rec.StrategyUsed = strategy
	return rec
}

// cleanFineAmount strips the currency symbol, thousands separators,
// and whitespace. Anything not purely numeric afterwards is discarded.
func cleanFineAmount(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return ""
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return s
}

// cleanPartyName collapses "n/a" and empty to "", otherwise appends
// the trailing separator used when assembling the title line.
func cleanPartyName(name string) string {
	name = strings.TrimSpace(name)
	if isNA(name) {
		return ""
	}
	if !strings.HasSuffix(name, ", ") {
		name += ", "
	}
	return name
}

func isNA(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "" || s == "n/a"
}
