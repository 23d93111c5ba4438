package tagfinder

import (
	"bytes"
	"unicode/utf8"
)

// Position is a cursor into a UTF-8 buffer tracked in two coordinate systems
// at once: Codepoint counts characters from the start of the buffer and Byte
// counts raw storage units. Positions are plain values; stepping returns a
// new Position and never mutates the receiver.
type Position struct {
	Codepoint int
	Byte      int
}

// NoPosition is the sentinel for an unset position.
//
//nolint:gochecknoglobals // Immutable sentinel value.
var NoPosition = Position{Codepoint: -1, Byte: -1}

// StartPosition returns the position of the first character of any buffer.
func StartPosition() Position {
	return Position{}
}

// EndPosition returns the position just past the last character of text.
// A NUL byte terminates the buffer early.
func EndPosition(text []byte) Position {
	return StartPosition().Advance(text, len(text))
}

// Valid returns true if both coordinates are set.
func (p Position) Valid() bool {
	return p.Codepoint >= 0 && p.Byte >= 0
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Codepoint < other.Codepoint
}

// After reports whether p comes strictly after other.
func (p Position) After(other Position) bool {
	return p.Codepoint > other.Codepoint
}

// Compare returns -1, 0 or +1 depending on codepoint order.
func (p Position) Compare(other Position) int {
	switch {
	case p.Codepoint < other.Codepoint:
		return -1
	case p.Codepoint > other.Codepoint:
		return 1
	default:
		return 0
	}
}

// Advance steps forward n codepoints through text. Stepping stops early at
// the end of the buffer or at a NUL byte; the remaining count is discarded.
// Bytes that do not start a valid UTF-8 sequence count as one codepoint.
func (p Position) Advance(text []byte, n int) Position {
	if !p.Valid() {
		return p
	}
	for n > 0 && p.Byte < len(text) && text[p.Byte] != 0 {
		p.Byte += sequenceLen(text, p.Byte)
		p.Codepoint++
		n--
	}
	return p
}

// Retreat steps backward n codepoints through text, deriving each sequence
// boundary from the bytes just before the current offset. Stepping stops at
// the start of the buffer.
func (p Position) Retreat(text []byte, n int) Position {
	if !p.Valid() {
		return p
	}
	if p.Byte > len(text) {
		p.Byte = len(text)
	}
	for n > 0 && p.Byte > 0 {
		_, size := utf8.DecodeLastRune(text[:p.Byte])
		p.Byte -= size
		p.Codepoint--
		n--
	}
	return p
}

// sequenceLen returns the byte width of the codepoint starting at offset.
// Malformed or truncated sequences have width 1 so stepping always makes
// progress and never runs past the buffer.
func sequenceLen(text []byte, offset int) int {
	if text[offset] < utf8.RuneSelf {
		return 1
	}
	_, size := utf8.DecodeRune(text[offset:])
	return size
}

// source is the buffer a single parse works on, truncated at the first NUL.
type source struct {
	data []byte
	end  Position
}

func newSource(text []byte) source {
	if idx := bytes.IndexByte(text, 0); idx >= 0 {
		text = text[:idx]
	}
	return source{data: text, end: EndPosition(text)}
}

// charAt returns the ASCII character at pos, or 0 for multi-byte characters
// and positions at or past the end. Only ASCII characters carry Markdown
// meaning.
func (s source) charAt(pos Position) byte {
	if pos.Byte < 0 || pos.Byte >= len(s.data) {
		return 0
	}
	chr := s.data[pos.Byte]
	if chr >= utf8.RuneSelf {
		return 0
	}
	return chr
}

func (s source) advance(pos Position, n int) Position {
	return pos.Advance(s.data, n)
}

func (s source) retreat(pos Position, n int) Position {
	return pos.Retreat(s.data, n)
}
