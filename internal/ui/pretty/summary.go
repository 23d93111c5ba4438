package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtags/pkg/runner"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 tags in 3 files, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesProcessed == 0 && stats.FilesErrored == 0 {
		return s.Dim.Render("No files processed") + "\n"
	}

	parts := []string{fmt.Sprintf("%s in %d %s",
		s.Bold.Render(fmt.Sprintf("%d %s", stats.TagsTotal, plural(stats.TagsTotal, "tag", "tags"))),
		stats.FilesProcessed,
		plural(stats.FilesProcessed, "file", "files"),
	)}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block with a count per
// tag kind, in kind order.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	builder.WriteString("  Total tags:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.TagsTotal)) + "\n")

	kinds := make([]tagfinder.Kind, 0, len(stats.TagsByKind))
	for kind := range stats.TagsByKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		label := fmt.Sprintf("    %-20s", kind.String()+":")
		builder.WriteString(label + s.Kind(kind).Render(strconv.Itoa(stats.TagsByKind[kind])) + "\n")
	}

	return builder.String()
}
