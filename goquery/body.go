package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/casefeed"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// killTexts are boilerplate phrases stripped from assembled bodies.
var killTexts = []string{
	"Share your comments here!",
	"Share blogs or news articles here!",
	"The decision below is a machine translation of the Italian original. Please refer to the Italian original for more details.",
}

// commentStop ends the Comment section walk; everything after it is
// wiki boilerplate.
const commentStop = "Share your comments here!"

// Ensure BodyExtractor implements casefeed.BodyExtractor.
var _ casefeed.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor assembles decision body text from the Facts, Holding,
// and Comment sections of an entry. Section HTML is converted to
// Markdown; entries without named sections fall back to main-content
// extraction.
type BodyExtractor struct {
	converter casefeed.Converter
	fallback  casefeed.ContentExtractor
}

// NewBodyExtractor creates a BodyExtractor. The fallback may be nil,
// in which case unstructured entries yield an empty body.
func NewBodyExtractor(converter casefeed.Converter, fallback casefeed.ContentExtractor) *BodyExtractor {
	return &BodyExtractor{converter: converter, fallback: fallback}
}

// ExtractBody returns the assembled body text:
//
//	<facts>
//	# Décision
//	<holding>
//	# Commentaire
//	<comment>
//
// Kill phrases are stripped from the result.
func (e *BodyExtractor) ExtractBody(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", casefeed.Errorf(casefeed.EINVALID, "parse HTML: %v", err)
	}

	facts := e.section(doc, "Facts", "h3", "")
	holding := e.section(doc, "Holding", "h3", "")
	comment := e.section(doc, "Comment", "h2, h3", commentStop)

	if facts == "" && holding == "" && comment == "" {
		if e.fallback == nil {
			return "", nil
		}
		text, err := e.fallback.Extract(raw)
		if err != nil {
			return "", err
		}
		return stripKillTexts(text), nil
	}

	body := strings.Join([]string{facts, "# Décision", holding, "# Commentaire", comment}, "\n")
	return stripKillTexts(body), nil
}

// section collects the siblings of the heading anchored by span#id
// until the next heading (or the stop phrase) and converts them to
// Markdown.
func (e *BodyExtractor) section(doc *goquery.Document, id, headings, stop string) string {
	span := doc.Find("span#" + id).First()
	if span.Length() == 0 {
		return ""
	}
	heading := span.Closest(headings)
	if heading.Length() == 0 {
		return ""
	}

	var parts []string
	for sib := heading.Next(); sib.Length() > 0; sib = sib.Next() {
		if isHeading(sib.Nodes[0]) {
			break
		}
		if stop != "" && strings.Contains(sib.Text(), stop) {
			break
		}
		parts = append(parts, e.render(sib))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// render converts one sibling element to Markdown, falling back to its
// plain text when conversion fails.
func (e *BodyExtractor) render(sel *goquery.Selection) string {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	md, err := e.converter.Convert(html)
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	return strings.TrimSpace(md)
}

func isHeading(n *html.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func stripKillTexts(text string) string {
	for _, kill := range killTexts {
		text = strings.ReplaceAll(text, kill, "")
	}
	return strings.TrimSpace(text)
}
