// Package pipeline orchestrates decision-record extraction: strategy
// selection, per-entry processing with failure containment, shared
// normalization, and the feed run loop.
package pipeline

import "github.com/fwojciec/casefeed"

// Registry holds parsing strategies in priority order. Order is
// significant: strategies are tried first to last, reflecting
// decreasing extraction reliability, and the terminal fallback must be
// registered last.
type Registry struct {
	strategies []casefeed.Strategy
}

// NewRegistry creates a Registry with the given strategies, tried in
// argument order.
func NewRegistry(strategies ...casefeed.Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// Insert adds a strategy at position i, shifting lower-priority
// strategies down. New input shapes are supported by inserting here,
// never by widening an existing strategy.
func (r *Registry) Insert(i int, s casefeed.Strategy) {
	if i < 0 {
		i = 0
	}
	if i > len(r.strategies) {
		i = len(r.strategies)
	}
	r.strategies = append(r.strategies[:i], append([]casefeed.Strategy{s}, r.strategies[i:]...)...)
}

// Select returns the first strategy whose detector accepts the raw
// body, or nil when none matches.
func (r *Registry) Select(raw string) casefeed.Strategy {
	for _, s := range r.strategies {
		if s.CanParse(raw) {
			return s
		}
	}
	return nil
}

// Strategies returns the registered strategies in priority order.
func (r *Registry) Strategies() []casefeed.Strategy {
	return r.strategies
}
