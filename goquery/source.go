package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/casefeed"
)

// Ensure SourceLocator implements casefeed.SourceLocator.
var _ casefeed.SourceLocator = (*SourceLocator)(nil)

// SourceLocator finds the original-source link in a decision table.
type SourceLocator struct{}

// NewSourceLocator creates a new SourceLocator.
func NewSourceLocator() *SourceLocator {
	return &SourceLocator{}
}

// SourceURL returns the href of the first link in the cell following
// the "Original Source" row header, or "" when absent.
func (l *SourceLocator) SourceURL(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return ""
	}

	href := ""
	table.Find("th, td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if !strings.Contains(cell.Text(), "Original Source") {
			return true
		}
		link := cell.NextFiltered("th, td").Find("a").First()
		href, _ = link.Attr("href")
		return false
	})
	return href
}
