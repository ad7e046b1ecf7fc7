package casefeed

import "context"

// FeedEntry is one raw entry from the decision feed.
type FeedEntry struct {
	ID      string
	Title   string
	Summary string // raw body: HTML, wikicode, or prose
}

// FeedService retrieves entries from the decision feed.
// Implementations hide transport, user-agent handling, and feed-format
// parsing.
type FeedService interface {
	Fetch(ctx context.Context) ([]FeedEntry, error)
}

// ProcessedStore tracks entry IDs that have already been processed, so
// reruns skip them. MarkProcessed persists immediately; a persistence
// failure returns an error and leaves the entry unmarked so it is
// retried on the next run.
type ProcessedStore interface {
	IsProcessed(id string) bool
	MarkProcessed(id string) error
}

// RecordWriter persists a rendered record under a sanitized filename.
type RecordWriter interface {
	WriteRecord(name, content string) error
}

// FilenameSanitizer turns a proposed filename into a safe one.
type FilenameSanitizer interface {
	Sanitize(proposed string) string
}

// SourceLocator extracts the original-source URL from a raw entry
// body. Returns "" when no source link is present.
type SourceLocator interface {
	SourceURL(raw string) string
}

// BodyExtractor assembles the readable body text of a decision from
// its raw entry body. Returns "" when nothing readable is found.
type BodyExtractor interface {
	ExtractBody(raw string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// ContentExtractor extracts main text content from HTML, removing
// boilerplate. Used as a fallback when a document has no recognized
// section structure.
type ContentExtractor interface {
	Extract(html string) (string, error)
}
