// Package fs provides file-based persistence: rendered case notes as
// Markdown files and the processed-entry tracking store.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/casefeed"
)

// Ensure Writer implements casefeed.RecordWriter at compile time.
var _ casefeed.RecordWriter = (*Writer)(nil)

// Writer writes rendered records as Markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes content under name (with a .md extension) in the
// base directory, creating it if needed.
func (w *Writer) WriteRecord(name, content string) error {
	if name == "" {
		return casefeed.Errorf(casefeed.EINVALID, "record filename required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.baseDir, name+".md")
	return os.WriteFile(path, []byte(content), 0644)
}

// Ensure Sanitizer implements casefeed.FilenameSanitizer.
var _ casefeed.FilenameSanitizer = (*Sanitizer)(nil)

// Sanitizer strips characters that are unsafe in filenames.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// forbidden covers path separators and the characters Windows rejects.
var forbidden = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "",
	"*", "",
	"?", "",
	`"`, "",
	"<", "",
	">", "",
	"|", "",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

// Sanitize returns a filesystem-safe version of the proposed name.
// Leading and trailing dots and spaces are trimmed as well.
func (s *Sanitizer) Sanitize(proposed string) string {
	name := forbidden.Replace(proposed)
	name = strings.Join(strings.Fields(name), " ")
	return strings.Trim(name, ". ")
}
