// Package slog provides logging decorators for casefeed capability
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/casefeed"
)

// Ensure FeedService implements casefeed.FeedService.
var _ casefeed.FeedService = (*FeedService)(nil)

// FeedService wraps a casefeed.FeedService with logging.
type FeedService struct {
	inner  casefeed.FeedService
	logger *slog.Logger
}

// NewFeedService creates a logging FeedService decorator.
func NewFeedService(inner casefeed.FeedService, logger *slog.Logger) *FeedService {
	return &FeedService{inner: inner, logger: logger}
}

// Fetch delegates to the inner service and logs entry count and
// duration, or the error.
func (s *FeedService) Fetch(ctx context.Context) ([]casefeed.FeedEntry, error) {
	start := time.Now()
	entries, err := s.inner.Fetch(ctx)
	if err != nil {
		s.logger.Error("feed fetch failed", "err", err, "duration", time.Since(start))
		return nil, err
	}
	s.logger.Info("feed fetched", "entries", len(entries), "duration", time.Since(start))
	return entries, nil
}
