// Package wikicode implements the pipe-delimited wiki-markup strategy.
// Feed entries that bypass HTML rendering arrive as raw template
// wikicode ("|key=value" runs inside a decision box); no markup tree
// applies, so extraction is regex-based.
package wikicode

import (
	"regexp"
	"strings"

	"github.com/fwojciec/casefeed"
)

var (
	// fieldRe captures one |key=value pair, value running to the next
	// pipe. Values may span lines.
	fieldRe = regexp.MustCompile(`\|\s*([^=|]+)=\s*([^|]+)`)

	// articleRe captures the repeating GDPR article listing.
	articleRe = regexp.MustCompile(`\|GDPR_Article_\d+=(.*?)<br />`)
)

// Ensure Strategy implements casefeed.Strategy at compile time.
var _ casefeed.Strategy = (*Strategy)(nil)

// Strategy extracts decision fields from wikicode decision boxes. The
// box marker selects the key mapping; unrecognized keys are ignored.
type Strategy struct {
	mappings map[casefeed.BoxType]casefeed.FieldMapping
}

// New creates a new wikicode Strategy.
func New() *Strategy {
	return &Strategy{mappings: casefeed.WikicodeMappings}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return "Wikicode"
}

// CanParse reports whether the raw body contains a known decision box
// marker.
func (s *Strategy) CanParse(raw string) bool {
	return casefeed.DetectBoxType(raw) != ""
}

// ExtractFields scans |key=value pairs and assigns recognized keys
// through the matched box type's mapping. Values have surrounding
// whitespace and embedded newlines stripped. A CJEU box with no
// authority captured defaults to "CJUE".
func (s *Strategy) ExtractFields(raw, sourceURL string, refs []string) (*casefeed.Record, error) {
	boxType := casefeed.DetectBoxType(raw)
	if boxType == "" {
		return nil, casefeed.Errorf(casefeed.EUNPROCESSABLE, "no decision box marker in entry body")
	}
	mapping := s.mappings[boxType]

	rec := &casefeed.Record{}
	for _, m := range fieldRe.FindAllStringSubmatch(raw, -1) {
		key := strings.TrimSpace(m[1])
		mapping.Apply(rec, key, cleanValue(m[2]))
	}

	if boxType == casefeed.BoxCJEU && rec.AuthorityRaw == "" {
		rec.AuthorityRaw = "CJUE"
	}

	rec.LegalReferences = refs
	if sourceURL != "" {
		rec.SourceURL = sourceURL
	}
	return rec, nil
}

// cleanValue strips surrounding whitespace and embedded newlines. The
// last value of a box runs up to the template close, so a trailing
// "}}" is trimmed as well.
func cleanValue(v string) string {
	v = strings.TrimSpace(strings.ReplaceAll(v, "\n", " "))
	v = strings.TrimSuffix(v, "}}")
	return strings.TrimSpace(v)
}

// ExtractReferences scans the |GDPR_Article_N= listing and rewrites
// each citation to compact form. No listing returns an empty slice.
func (s *Strategy) ExtractReferences(raw string) []string {
	var refs []string
	for _, m := range articleRe.FindAllStringSubmatch(raw, -1) {
		if ref := casefeed.RewriteCitation(strings.TrimSpace(m[1])); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
