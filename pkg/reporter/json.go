package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdtags/pkg/runner"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's tags.
type JSONFileResult struct {
	Path  string    `json:"path"`
	Tags  []JSONTag `json:"tags"`
	Error string    `json:"error,omitempty"`
}

// JSONTag represents a single tag. Spans are omitted when unset.
type JSONTag struct {
	Kind      string    `json:"kind"`
	Flags     int       `json:"flags"`
	Escaped   bool      `json:"escaped,omitempty"`
	Weight    int       `json:"weight"`
	Line      int       `json:"line"`
	Column    int       `json:"column"`
	Span      *JSONSpan `json:"span,omitempty"`
	TextSpan  *JSONSpan `json:"textSpan,omitempty"`
	ExtraSpan *JSONSpan `json:"extraSpan,omitempty"`
	Text      *string   `json:"text,omitempty"`
	Extra     *string   `json:"extra,omitempty"`
}

// JSONSpan is a half-open range given in both codepoints and bytes.
type JSONSpan struct {
	Start JSONPosition `json:"start"`
	End   JSONPosition `json:"end"`
}

// JSONPosition is a tagfinder.Position.
type JSONPosition struct {
	Codepoint int `json:"codepoint"`
	Byte      int `json:"byte"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesProcessed int            `json:"filesProcessed"`
	FilesErrored   int            `json:"filesErrored"`
	TotalTags      int            `json:"totalTags"`
	ByKind         map[string]int `json:"byKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalTags, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByKind: make(map[string]int)},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path: r.opts.displayPath(file.Path),
			Tags: make([]JSONTag, 0, len(file.Tags)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
			output.Files = append(output.Files, fileResult)
			continue
		}

		lines := newLineIndex(file.Content)
		for _, tag := range file.Tags {
			fileResult.Tags = append(fileResult.Tags, r.buildTag(file.Content, lines, tag))
			output.Summary.ByKind[tag.Kind.String()]++
		}

		output.Summary.TotalTags += len(file.Tags)
		output.Summary.FilesProcessed++
		output.Files = append(output.Files, fileResult)
	}

	return output
}

func (r *JSONReporter) buildTag(content []byte, lines *lineIndex, tag tagfinder.Tag) JSONTag {
	line, column := lines.locate(tag.Span.Start)
	out := JSONTag{
		Kind:      tag.Kind.String(),
		Flags:     int(tag.Flags),
		Escaped:   tag.Flags.Has(tagfinder.FlagEscaped),
		Weight:    tag.Weight,
		Line:      line,
		Column:    column,
		Span:      jsonSpan(tag.Span),
		TextSpan:  jsonSpan(tag.Text),
		ExtraSpan: jsonSpan(tag.Extra),
	}

	if r.opts.ShowText {
		text := tagfinder.ExtractText(content, tag)
		out.Text = &text
		if tag.HasExtra() {
			extra := tagfinder.ExtractExtra(content, tag)
			out.Extra = &extra
		}
	}
	return out
}

func jsonSpan(span tagfinder.Span) *JSONSpan {
	if !span.Valid() {
		return nil
	}
	return &JSONSpan{
		Start: JSONPosition{Codepoint: span.Start.Codepoint, Byte: span.Start.Byte},
		End:   JSONPosition{Codepoint: span.End.Codepoint, Byte: span.End.Byte},
	}
}
