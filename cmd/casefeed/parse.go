package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/casefeed"
)

// Run parses a single raw entry body and prints the rendered case
// note, for inspecting extraction behavior without touching the feed.
func (c *ParseCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", c.File, err)
	}

	entry := casefeed.FeedEntry{
		ID:      "file://" + c.File,
		Summary: string(raw),
	}

	rec := deps.Processor.ProcessEntry(deps.Ctx, entry)

	fmt.Fprintf(deps.Stderr, "strategy: %s\nfilename: %s\n\n",
		rec.StrategyUsed, deps.Sanitizer.Sanitize(rec.ProposedFilename))
	fmt.Fprint(deps.Stdout, casefeed.RenderDocument(rec))
	return nil
}
