package tagfinder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange is returned when an extraction range does not fit the
// buffer it refers to.
var ErrInvalidRange = errors.New("invalid extraction range")

// ExtractEscaped walks codepointLength codepoints of text starting at
// byteOffset and returns them with backslash escapes removed. A backslash
// directly before a newline is kept. Only ASCII characters are inspected, and
// malformed sequences count as one codepoint of width 1.
//
// The walk stops early at the end of text or at a NUL byte.
func ExtractEscaped(text []byte, byteOffset, codepointLength int) (string, error) {
	if byteOffset < 0 || byteOffset > len(text) || codepointLength < 0 {
		return "", fmt.Errorf("%w: offset %d, length %d in %d bytes",
			ErrInvalidRange, byteOffset, codepointLength, len(text))
	}

	var (
		out      strings.Builder
		runStart = byteOffset
		pos      = byteOffset
	)
	out.Grow(min(len(text)-byteOffset, codepointLength))

	for range codepointLength {
		if pos >= len(text) || text[pos] == 0 {
			break
		}
		width := sequenceLen(text, pos)
		if width == 1 && text[pos] == '\\' && (pos+1 >= len(text) || text[pos+1] != '\n') {
			out.Write(text[runStart:pos])
			runStart = pos + 1
		}
		pos += width
	}
	out.Write(text[runStart:pos])

	return out.String(), nil
}

// ExtractText returns the content of a tag, markers excluded. Escapes are
// removed when the tag is flagged as escaped.
func ExtractText(text []byte, tag Tag) string {
	return extractSpan(text, tag.Text, tag.Flags)
}

// ExtractFull returns the full extent of a tag, markers included.
func ExtractFull(text []byte, tag Tag) string {
	return extractSpan(text, tag.Span, tag.Flags)
}

// ExtractExtra returns the URL of a link, or an empty string when the tag has
// none.
func ExtractExtra(text []byte, tag Tag) string {
	return extractSpan(text, tag.Extra, tag.Flags)
}

// LinkTarget returns the destination of a link tag: its URL when present,
// otherwise its text. Anything from the first space on is dropped, which
// removes an optional link title.
func LinkTarget(text []byte, tag Tag) string {
	target := ExtractExtra(text, tag)
	if target == "" {
		target = ExtractText(text, tag)
	}
	if idx := strings.IndexByte(target, ' '); idx >= 0 {
		target = target[:idx]
	}
	return target
}

// BetweenMode selects the range covered by ExtractTextBetween and
// ExtractFullBetween.
type BetweenMode int

const (
	// StartToNext runs from the start of the first tag to the start of the
	// second.
	StartToNext BetweenMode = iota

	// IntermediateToNext runs from the end of the first tag to the start of
	// the second.
	IntermediateToNext

	// IntermediateToEnd runs from the end of the first tag to the end of the
	// second.
	IntermediateToEnd
)

// String returns the mode name.
func (m BetweenMode) String() string {
	switch m {
	case StartToNext:
		return "start-to-next"
	case IntermediateToNext:
		return "intermediate-to-next"
	case IntermediateToEnd:
		return "intermediate-to-end"
	default:
		return fmt.Sprintf("BetweenMode(%d)", int(m))
	}
}

// ExtractTextBetween returns the text between two tags. In StartToNext mode
// the range starts at the first tag's text, and in IntermediateToEnd mode it
// ends with the second tag's text. The escape flag of startTag decides
// whether escapes are removed.
func ExtractTextBetween(text []byte, startTag, endTag Tag, mode BetweenMode) string {
	var span Span
	switch mode {
	case StartToNext:
		span = Span{Start: startTag.Text.Start, End: endTag.Span.Start}
	case IntermediateToNext:
		span = Span{Start: startTag.Span.End, End: endTag.Span.Start}
	case IntermediateToEnd:
		span = Span{Start: startTag.Span.End, End: endTag.Text.End}
	}
	return extractSpan(text, span, startTag.Flags)
}

// ExtractFullBetween is ExtractTextBetween with markers included on both
// ends.
func ExtractFullBetween(text []byte, startTag, endTag Tag, mode BetweenMode) string {
	var span Span
	switch mode {
	case StartToNext:
		span = Span{Start: startTag.Span.Start, End: endTag.Span.Start}
	case IntermediateToNext:
		span = Span{Start: startTag.Span.End, End: endTag.Span.Start}
	case IntermediateToEnd:
		span = Span{Start: startTag.Span.End, End: endTag.Span.End}
	}
	return extractSpan(text, span, startTag.Flags)
}

func extractSpan(text []byte, span Span, flags Flags) string {
	if !span.Valid() || span.IsEmpty() {
		return ""
	}
	if flags.Has(FlagEscaped) {
		extracted, err := ExtractEscaped(text, span.Start.Byte, span.Len())
		if err != nil {
			return ""
		}
		return extracted
	}
	if span.Start.Byte > len(text) || span.End.Byte > len(text) || span.End.Byte < span.Start.Byte {
		return ""
	}
	return string(text[span.Start.Byte:span.End.Byte])
}
