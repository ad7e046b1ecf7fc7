package main

import (
	"fmt"

	"github.com/fwojciec/casefeed/pipeline"
)

// Run executes the feed pass.
func (c *RunCmd) Run(deps *Dependencies) error {
	runner := &pipeline.Runner{
		Feed:      deps.Feed,
		Store:     deps.Store,
		Writer:    deps.Writer,
		Sanitizer: deps.Sanitizer,
		Processor: deps.Processor,
		Logger:    deps.Logger,
		DryRun:    c.DryRun,
	}

	stats, err := runner.Run(deps.Ctx)
	if err != nil {
		return fmt.Errorf("feed run failed: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d entries: %d saved, %d skipped, %d failed\n",
		stats.Fetched, stats.Saved, stats.Skipped, stats.Failed)
	return nil
}
