package slog

import (
	"log/slog"

	"github.com/fwojciec/casefeed"
)

// Ensure ProcessedStore implements casefeed.ProcessedStore.
var _ casefeed.ProcessedStore = (*ProcessedStore)(nil)

// ProcessedStore wraps a casefeed.ProcessedStore with logging.
type ProcessedStore struct {
	inner  casefeed.ProcessedStore
	logger *slog.Logger
}

// NewProcessedStore creates a logging ProcessedStore decorator.
func NewProcessedStore(inner casefeed.ProcessedStore, logger *slog.Logger) *ProcessedStore {
	return &ProcessedStore{inner: inner, logger: logger}
}

// IsProcessed delegates to the inner store.
func (s *ProcessedStore) IsProcessed(id string) bool {
	return s.inner.IsProcessed(id)
}

// MarkProcessed delegates to the inner store and logs the outcome.
func (s *ProcessedStore) MarkProcessed(id string) error {
	if err := s.inner.MarkProcessed(id); err != nil {
		s.logger.Error("mark processed failed", "entry", id, "err", err)
		return err
	}
	s.logger.Debug("marked processed", "entry", id)
	return nil
}
