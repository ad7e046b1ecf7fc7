package fs

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/casefeed"
)

// bloomCapacity sizes the filter for years of feed history.
const bloomCapacity = 100_000

// bloomFPRate is the accepted false-positive rate; positives fall
// through to the exact set, so accuracy is unaffected.
const bloomFPRate = 0.001

// Ensure ProcessedStore implements casefeed.ProcessedStore.
var _ casefeed.ProcessedStore = (*ProcessedStore)(nil)

// ProcessedStore tracks processed entry IDs in a JSON array file. The
// file is loaded once and rewritten wholesale on each addition. A
// Bloom filter rebuilt on load answers definite negatives without
// touching the exact set.
//
// The store is single-owner: the run loop appends serially, matching
// the feed's one-entry-at-a-time processing model.
type ProcessedStore struct {
	path   string
	ids    []string
	set    map[string]struct{}
	filter *bloom.BloomFilter
}

// OpenProcessedStore loads the store from path. A missing file is an
// empty store, not an error.
func OpenProcessedStore(path string) (*ProcessedStore, error) {
	s := &ProcessedStore{
		path:   path,
		set:    make(map[string]struct{}),
		filter: bloom.NewWithEstimates(bloomCapacity, bloomFPRate),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &s.ids); err != nil {
		return nil, casefeed.Errorf(casefeed.EINVALID, "parse processed store %q: %v", path, err)
	}
	for _, id := range s.ids {
		s.set[id] = struct{}{}
		s.filter.AddString(id)
	}
	return s, nil
}

// IsProcessed reports whether id was already processed.
func (s *ProcessedStore) IsProcessed(id string) bool {
	if !s.filter.TestString(id) {
		return false
	}
	_, ok := s.set[id]
	return ok
}

// MarkProcessed appends id and rewrites the backing file. On write
// failure the in-memory state is rolled back so the entry is retried
// on the next run.
func (s *ProcessedStore) MarkProcessed(id string) error {
	if s.IsProcessed(id) {
		return nil
	}

	s.ids = append(s.ids, id)
	data, err := json.Marshal(s.ids)
	if err == nil {
		err = os.WriteFile(s.path, data, 0644)
	}
	if err != nil {
		s.ids = s.ids[:len(s.ids)-1]
		return err
	}

	s.set[id] = struct{}{}
	s.filter.AddString(id)
	return nil
}

// Len returns the number of processed entries.
func (s *ProcessedStore) Len() int {
	return len(s.ids)
}
