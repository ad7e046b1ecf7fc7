// Package http provides the Atom feed fetcher.
package http

import (
	"context"
	"io"
	"net/http"

	"github.com/beevik/etree"
	"github.com/fwojciec/casefeed"
)

// DefaultUserAgent identifies feed requests.
const DefaultUserAgent = "casefeed/1.0"

// maxFeedBytes caps how much of the feed body is read.
const maxFeedBytes = 16 << 20

// Ensure FeedService implements casefeed.FeedService.
var _ casefeed.FeedService = (*FeedService)(nil)

// FeedService fetches and parses an Atom decision feed over HTTP.
type FeedService struct {
	client    *http.Client
	feedURL   string
	userAgent string
}

// NewFeedService creates a FeedService for the given feed URL. If
// client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client, feedURL string) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{
		client:    client,
		feedURL:   feedURL,
		userAgent: DefaultUserAgent,
	}
}

// Fetch retrieves the feed and returns its entries in document order.
// Entries missing an id are skipped; a missing summary yields an entry
// with an empty body, which the pipeline handles as a prose fallback.
func (s *FeedService) Fetch(ctx context.Context) ([]casefeed.FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, casefeed.Errorf(casefeed.EINVALID, "invalid feed URL %q: %v", s.feedURL, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, casefeed.Errorf(casefeed.EINTERNAL, "feed fetch returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, err
	}

	return ParseFeed(body)
}

// ParseFeed parses Atom feed XML into entries.
func ParseFeed(data []byte) ([]casefeed.FeedEntry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, casefeed.Errorf(casefeed.EINVALID, "parse feed XML: %v", err)
	}

	var entries []casefeed.FeedEntry
	for _, el := range doc.FindElements("//entry") {
		entry := casefeed.FeedEntry{
			ID:      childText(el, "id"),
			Title:   childText(el, "title"),
			Summary: childText(el, "summary"),
		}
		if entry.ID == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func childText(el *etree.Element, name string) string {
	if child := el.SelectElement(name); child != nil {
		return child.Text()
	}
	return ""
}
