// Package mock provides hand-written mocks for casefeed interfaces.
package mock

import "github.com/fwojciec/casefeed"

var _ casefeed.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of casefeed.Strategy.
type Strategy struct {
	NameFn              func() string
	CanParseFn          func(raw string) bool
	ExtractFieldsFn     func(raw, sourceURL string, refs []string) (*casefeed.Record, error)
	ExtractReferencesFn func(raw string) []string
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) CanParse(raw string) bool {
	return s.CanParseFn(raw)
}

func (s *Strategy) ExtractFields(raw, sourceURL string, refs []string) (*casefeed.Record, error) {
	return s.ExtractFieldsFn(raw, sourceURL, refs)
}

func (s *Strategy) ExtractReferences(raw string) []string {
	return s.ExtractReferencesFn(raw)
}
