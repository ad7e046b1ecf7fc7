package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/casefeed"
	"github.com/fwojciec/casefeed/deepl"
	"github.com/fwojciec/casefeed/fs"
	"github.com/fwojciec/casefeed/goquery"
	"github.com/fwojciec/casefeed/htmltomarkdown"
	casehttp "github.com/fwojciec/casefeed/http"
	"github.com/fwojciec/casefeed/pipeline"
	"github.com/fwojciec/casefeed/prose"
	caseslog "github.com/fwojciec/casefeed/slog"
	"github.com/fwojciec/casefeed/trafilatura"
	"github.com/fwojciec/casefeed/translate"
	"github.com/fwojciec/casefeed/wikicode"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("casefeed"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'casefeed --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Run.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	translator, err := loadTranslator(cli)
	if err != nil {
		return err
	}

	deps.Processor = newProcessor(translator, cli.Run.DeeplKey, deps.Logger)
	deps.Sanitizer = fs.NewSanitizer()

	if cmd == "run" {
		deps.Feed = caseslog.NewFeedService(casehttp.NewFeedService(nil, cli.Run.Feed), deps.Logger)
		deps.Writer = fs.NewWriter(cli.Run.Out)

		store, err := fs.OpenProcessedStore(cli.Run.State)
		if err != nil {
			return fmt.Errorf("failed to open processed store %q: %w", cli.Run.State, err)
		}
		deps.Store = caseslog.NewProcessedStore(store, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// loadTranslator builds the translation tables, applying a YAML
// override file when one was given on either subcommand.
func loadTranslator(cli *CLI) (*translate.Translator, error) {
	path := cli.Run.Tables
	if path == "" {
		path = cli.Parse.Tables
	}
	if path == "" {
		return translate.NewTranslator(), nil
	}
	translator, err := translate.NewTranslatorFromYAML(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load translation tables %q: %w", path, err)
	}
	return translator, nil
}

// newProcessor wires the default extraction pipeline: wikitable, then
// wikicode, then the prose fallback.
func newProcessor(translator *translate.Translator, deeplKey string, logger *slog.Logger) *pipeline.Processor {
	registry := pipeline.NewRegistry(
		goquery.NewWikitable(),
		wikicode.New(),
		prose.New(),
	)
	normalizer := pipeline.NewNormalizer(translator, translator, translator, logger)
	body := goquery.NewBodyExtractor(htmltomarkdown.NewConverter(), trafilatura.NewExtractor())

	var bodyTranslator casefeed.BodyTranslator
	if deeplKey != "" {
		bodyTranslator = deepl.NewTranslator(deeplKey)
	}

	return pipeline.NewProcessor(registry, normalizer, goquery.NewSourceLocator(), body, bodyTranslator, logger)
}
