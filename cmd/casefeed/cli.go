package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/casefeed"
	"github.com/fwojciec/casefeed/pipeline"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Feed      casefeed.FeedService
	Store     casefeed.ProcessedStore
	Writer    casefeed.RecordWriter
	Sanitizer casefeed.FilenameSanitizer
	Processor *pipeline.Processor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run   RunCmd   `cmd:"" help:"Fetch the decision feed and save new entries as case notes"`
	Parse ParseCmd `cmd:"" help:"Parse one raw entry body from a file and print the rendered note"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Feed     string `default:"https://gdprhub.eu/index.php?title=Special:NewPages&feed=atom&hideredirs=1&limit=10&render=1" help:"Feed URL"`
	Out      string `short:"o" default:"." help:"Output directory for case notes"`
	State    string `default:"processed.json" help:"Processed-entry tracking file"`
	Tables   string `help:"YAML file overriding the built-in translation tables"`
	DeeplKey string `env:"DEEPL_AUTH_KEY" help:"DeepL API key; body translation is skipped when empty"`
	DryRun   bool   `help:"Process entries without writing or marking them processed"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File   string `arg:"" help:"File containing one raw entry body (HTML or wikicode)"`
	Tables string `help:"YAML file overriding the built-in translation tables"`
}
