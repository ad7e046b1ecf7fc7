package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/casefeed"
	"github.com/google/uuid"
)

// Runner drives one feed pass: fetch entries, skip already-processed
// IDs, process each entry independently, render, persist, and mark
// processed only after a successful write. Entries are handled one at
// a time; a failed entry is logged and retried on the next run.
type Runner struct {
	Feed      casefeed.FeedService
	Store     casefeed.ProcessedStore
	Writer    casefeed.RecordWriter
	Sanitizer casefeed.FilenameSanitizer
	Processor *Processor
	Logger    *slog.Logger

	// DryRun processes every entry but writes nothing and marks
	// nothing processed.
	DryRun bool
}

// RunStats summarizes one feed pass.
type RunStats struct {
	Fetched int
	Skipped int
	Saved   int
	Failed  int
}

// Run executes one feed pass. Only a feed fetch failure is fatal;
// every other failure affects one entry.
func (r *Runner) Run(ctx context.Context) (*RunStats, error) {
	entries, err := r.Feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	logger := r.Logger.With("run", uuid.New().String())
	stats := &RunStats{Fetched: len(entries)}

	for _, entry := range entries {
		if !r.DryRun && r.Store.IsProcessed(entry.ID) {
			logger.Info("already processed", "entry", entry.ID)
			stats.Skipped++
			continue
		}

		rec := r.Processor.ProcessEntry(ctx, entry)
		name := r.Sanitizer.Sanitize(rec.ProposedFilename)
		content := casefeed.RenderDocument(rec)

		if r.DryRun {
			logger.Info("dry run, not saving", "entry", entry.ID, "file", name, "strategy", rec.StrategyUsed)
			stats.Saved++
			continue
		}

		if err := r.Writer.WriteRecord(name, content); err != nil {
			// Not marked processed, so the entry retries next run.
			logger.Error("save failed, entry not marked processed", "entry", entry.ID, "file", name, "err", err)
			stats.Failed++
			continue
		}

		if err := r.Store.MarkProcessed(entry.ID); err != nil {
			logger.Error("marking processed failed", "entry", entry.ID, "err", err)
			stats.Failed++
			continue
		}

		logger.Info("saved", "entry", entry.ID, "file", name, "strategy", rec.StrategyUsed)
		stats.Saved++
	}

	return stats, nil
}
