package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdtags/internal/ui/pretty"
	"github.com/yaklabco/mdtags/pkg/runner"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// TextReporter formats results as styled terminal output, one line per tag.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
	width  int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		width:  opts.lineWidth(),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to process."))
		}
		return 0, nil
	}

	clip := lipgloss.NewStyle().MaxWidth(r.width)
	var total int

	for idx, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprintln(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}

		if idx > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Tags)))

		lines := newLineIndex(file.Content)
		for _, tag := range file.Tags {
			fmt.Fprintln(r.bw, clip.Render(r.styles.FormatTag(r.tagLine(file.Content, lines, tag))))
			total++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) tagLine(content []byte, lines *lineIndex, tag tagfinder.Tag) pretty.TagLine {
	line, column := lines.locate(tag.Span.Start)
	out := pretty.TagLine{Line: line, Column: column, Tag: tag}
	if !r.opts.ShowText {
		return out
	}

	out.Text = tagfinder.ExtractText(content, tag)
	if tag.Kind == tagfinder.KindLink {
		out.Extra = tagfinder.LinkTarget(content, tag)
	} else {
		out.Extra = tagfinder.ExtractExtra(content, tag)
	}
	return out
}
