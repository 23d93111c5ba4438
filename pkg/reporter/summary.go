package reporter

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtags/internal/ui/pretty"
	"github.com/yaklabco/mdtags/pkg/runner"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// Table layout constants for summary output.
const (
	fileColWidth      = 40
	numColWidth       = 9
	maxFilePathLength = 38
)

// summaryColumn groups tag kinds under one heading.
type summaryColumn struct {
	title string
	kinds []tagfinder.Kind
}

//nolint:gochecknoglobals // Read-only table layout.
var summaryColumns = []summaryColumn{
	{title: "Headers", kinds: []tagfinder.Kind{tagfinder.KindHeader}},
	{title: "Styles", kinds: []tagfinder.Kind{tagfinder.KindTextStyle, tagfinder.KindAlternativeTextStyle}},
	{title: "Links", kinds: []tagfinder.Kind{tagfinder.KindLink}},
	{title: "Lists", kinds: []tagfinder.Kind{tagfinder.KindOrderedList, tagfinder.KindUnorderedList}},
	{title: "Paras", kinds: []tagfinder.Kind{tagfinder.KindParagraph}},
	{title: "Total", kinds: nil},
}

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryReporter formats results as a per-file table of tag counts
// followed by run totals per kind.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		r.bw.WriteString(r.styles.Dim.Render("No files to process.") + "\n")
		return 0, nil
	}

	tableWidth := fileColWidth + len(summaryColumns)*(numColWidth+1)
	separator := r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth))

	header := []string{r.styles.TableHeader.Render(padRight("File", fileColWidth))}
	for _, col := range summaryColumns {
		header = append(header, r.styles.TableHeader.Render(padLeft(col.title, numColWidth)))
	}

	r.bw.WriteString(r.styles.Bold.Render("Files Summary") + "\n")
	r.bw.WriteString(separator + "\n")
	r.bw.WriteString(strings.Join(header, " ") + "\n")
	r.bw.WriteString(separator + "\n")

	for _, file := range result.Files {
		r.writeRow(file)
	}

	r.bw.WriteString(r.styles.FormatSummary(result.Stats))
	return result.Stats.TagsTotal, nil
}

func (r *SummaryReporter) writeRow(file runner.FileOutcome) {
	path := r.opts.displayPath(file.Path)
	if len(path) > maxFilePathLength {
		path = "…" + path[len(path)-(maxFilePathLength-1):]
	}

	if file.Error != nil {
		r.bw.WriteString(r.styles.Error.Render(padRight(path, fileColWidth)) + " " +
			r.styles.Error.Render("error") + "\n")
		return
	}

	counts := make(map[tagfinder.Kind]int)
	for _, tag := range file.Tags {
		counts[tag.Kind]++
	}

	row := []string{padRight(path, fileColWidth)}
	for _, col := range summaryColumns {
		n := len(file.Tags)
		if col.kinds != nil {
			n = 0
			for _, kind := range col.kinds {
				n += counts[kind]
			}
		}
		row = append(row, padLeft(strconv.Itoa(n), numColWidth))
	}
	r.bw.WriteString(strings.Join(row, " ") + "\n")
}
