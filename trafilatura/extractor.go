// Package trafilatura extracts main text content from unstructured
// entry HTML, used when a decision has no recognized section headings.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/casefeed"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements casefeed.ContentExtractor at compile time.
var _ casefeed.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main text content with
// boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
