// Package goquery implements the HTML-shaped parts of the extraction
// pipeline: the wikitable strategy, original-source location, and body
// section extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/casefeed"
)

// decision tables carry this CSS class marker in the feed HTML
const tableSelector = "table.wikitable"

// Ensure Wikitable implements casefeed.Strategy at compile time.
var _ casefeed.Strategy = (*Wikitable)(nil)

// Wikitable extracts decision fields from an HTML table whose
// two-column rows pair a field label with its value. It is the most
// reliable strategy and runs first in the default registry.
type Wikitable struct {
	mapping casefeed.FieldMapping
}

// NewWikitable creates a new Wikitable strategy.
func NewWikitable() *Wikitable {
	return &Wikitable{mapping: casefeed.WikitableMapping}
}

// Name returns the strategy's identifier.
func (s *Wikitable) Name() string {
	return "Wikitable"
}

// CanParse reports whether the raw body contains a decision table.
// Malformed HTML means "not applicable", never an error.
func (s *Wikitable) CanParse(raw string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return false
	}
	return doc.Find(tableSelector).Length() > 0
}

// ExtractFields iterates the table's two-column rows, strips trailing
// colons from labels, and assigns values through the wikitable field
// mapping. Unmapped labels are ignored.
func (s *Wikitable) ExtractFields(raw, sourceURL string, refs []string) (*casefeed.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, casefeed.Errorf(casefeed.EINVALID, "parse HTML: %v", err)
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, casefeed.Errorf(casefeed.EUNPROCESSABLE, "no decision table in entry body")
	}

	rec := &casefeed.Record{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() != 2 {
			return
		}
		label := strings.ReplaceAll(strings.TrimSpace(cells.Eq(0).Text()), ":", "")
		value := strings.TrimSpace(cells.Eq(1).Text())
		s.mapping.Apply(rec, label, value)
	})

	if rec.AuthorityRaw == "" {
		rec.AuthorityRaw = casefeed.AuthorityUnknown
	} else {
		rec.AuthorityRaw = casefeed.StripAuthorityQualifier(rec.AuthorityRaw)
	}

	rec.LegalReferences = refs
	if sourceURL != "" {
		rec.SourceURL = sourceURL
	}
	return rec, nil
}

// ExtractReferences finds the "Relevant Law" row and collects every
// linked citation in its sibling cell, rewritten to compact form. A
// structural mismatch returns an empty slice.
func (s *Wikitable) ExtractReferences(raw string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil
	}

	var refs []string
	table.Find("th, td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if !strings.Contains(cell.Text(), "Relevant Law") {
			return true
		}
		cell.NextFiltered("th, td").Find("a").Each(func(_ int, link *goquery.Selection) {
			if ref := casefeed.RewriteCitation(strings.TrimSpace(link.Text())); ref != "" {
				refs = append(refs, ref)
			}
		})
		return false
	})
	return refs
}
