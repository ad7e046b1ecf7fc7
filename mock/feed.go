package mock

import (
	"context"

	"github.com/fwojciec/casefeed"
)

var _ casefeed.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of casefeed.FeedService.
type FeedService struct {
	FetchFn func(ctx context.Context) ([]casefeed.FeedEntry, error)
}

func (s *FeedService) Fetch(ctx context.Context) ([]casefeed.FeedEntry, error) {
	return s.FetchFn(ctx)
}

var _ casefeed.ProcessedStore = (*ProcessedStore)(nil)

// ProcessedStore is a mock implementation of casefeed.ProcessedStore.
type ProcessedStore struct {
	IsProcessedFn   func(id string) bool
	MarkProcessedFn func(id string) error
}

func (s *ProcessedStore) IsProcessed(id string) bool {
	return s.IsProcessedFn(id)
}

func (s *ProcessedStore) MarkProcessed(id string) error {
	return s.MarkProcessedFn(id)
}

var _ casefeed.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of casefeed.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(name, content string) error
}

func (w *RecordWriter) WriteRecord(name, content string) error {
	return w.WriteRecordFn(name, content)
}

var _ casefeed.FilenameSanitizer = (*FilenameSanitizer)(nil)

// FilenameSanitizer is a mock implementation of casefeed.FilenameSanitizer.
type FilenameSanitizer struct {
	SanitizeFn func(proposed string) string
}

func (s *FilenameSanitizer) Sanitize(proposed string) string {
	return s.SanitizeFn(proposed)
}

var _ casefeed.SourceLocator = (*SourceLocator)(nil)

// SourceLocator is a mock implementation of casefeed.SourceLocator.
type SourceLocator struct {
	SourceURLFn func(raw string) string
}

func (l *SourceLocator) SourceURL(raw string) string {
	return l.SourceURLFn(raw)
}

var _ casefeed.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of casefeed.BodyExtractor.
type BodyExtractor struct {
	ExtractBodyFn func(raw string) (string, error)
}

func (e *BodyExtractor) ExtractBody(raw string) (string, error) {
	return e.ExtractBodyFn(raw)
}

var _ casefeed.Converter = (*Converter)(nil)

// Converter is a mock implementation of casefeed.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ casefeed.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of casefeed.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *ContentExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
