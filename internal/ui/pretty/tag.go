package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// TagLine holds the already extracted parts of one tag line.
type TagLine struct {
	Line   int
	Column int
	Tag    tagfinder.Tag
	Text   string
	Extra  string
}

// FormatKind renders "Kind(weight)" in the kind's style.
func (s *Styles) FormatKind(tag tagfinder.Tag) string {
	return s.Kind(tag.Kind).Render(fmt.Sprintf("%s(%d)", tag.Kind, tag.Weight))
}

// FormatTag formats a tag as "  line:col  Kind(w) [escaped] "text" -> "extra"".
// Empty Text and Extra are omitted.
func (s *Styles) FormatTag(line TagLine) string {
	var builder strings.Builder

	builder.WriteString("  ")
	builder.WriteString(s.Location.Render(fmt.Sprintf("%d:%d", line.Line, line.Column)))
	builder.WriteString("  ")
	builder.WriteString(s.FormatKind(line.Tag))

	if line.Tag.Flags.Has(tagfinder.FlagEscaped) {
		builder.WriteString(" " + s.Flags.Render("[escaped]"))
	}
	if line.Text != "" {
		builder.WriteString(" " + s.Text.Render(strconv.Quote(line.Text)))
	}
	if line.Extra != "" {
		builder.WriteString(" -> " + s.Extra.Render(strconv.Quote(line.Extra)))
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, tagCount int) string {
	header := s.FilePath.Render(path)
	if tagCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", tagCount, plural(tagCount, "tag", "tags")))
	}
	return header
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return s.FilePath.Render(path) + ": " + s.Error.Render(fmt.Sprintf("error: %v", err))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
