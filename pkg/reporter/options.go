package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdtags/pkg/config"
)

const (
	// bufWriterSize is the buffer size for buffered output writers (64 KiB).
	bufWriterSize = 64 * 1024

	// defaultTermWidth is used when the writer is not a terminal.
	defaultTermWidth = 100
)

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowText includes the extracted tag text in text and JSON output.
	ShowText bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool

	// Width limits text output lines. 0 means the terminal width, or 100
	// when the writer is not a terminal.
	Width int

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       string(config.ColorAuto),
		ShowText:    true,
		ShowSummary: true,
	}
}

// displayPath returns path relative to WorkingDir when it lies below it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// lineWidth returns the configured width or the writer's terminal width.
func (o Options) lineWidth() int {
	if o.Width > 0 {
		return o.Width
	}
	if f, ok := o.Writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
