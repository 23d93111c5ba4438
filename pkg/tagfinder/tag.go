package tagfinder

// Kind classifies the construct a Tag describes.
type Kind int

// Tag kinds. The numeric values are part of the flat record format.
const (
	KindInvalid Kind = iota
	KindNormal
	KindParagraph
	KindTextStyle
	KindAlternativeTextStyle
	KindLink
	KindHeader
	KindOrderedList
	KindUnorderedList
)

// String returns the kind name used in reports.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindParagraph:
		return "Paragraph"
	case KindTextStyle:
		return "TextStyle"
	case KindAlternativeTextStyle:
		return "AlternativeTextStyle"
	case KindLink:
		return "Link"
	case KindHeader:
		return "Header"
	case KindOrderedList:
		return "OrderedList"
	case KindUnorderedList:
		return "UnorderedList"
	default:
		return "Invalid"
	}
}

// IsSection returns true for kinds produced per line by the block classifier.
func (k Kind) IsSection() bool {
	switch k {
	case KindNormal, KindHeader, KindOrderedList, KindUnorderedList:
		return true
	default:
		return false
	}
}

// IsList returns true for ordered and unordered list items.
func (k Kind) IsList() bool {
	return k == KindOrderedList || k == KindUnorderedList
}

// Flags is a bit set of tag attributes.
type Flags int

const (
	// FlagNone marks a tag without attributes.
	FlagNone Flags = 0x0

	// FlagEscaped marks a tag whose source text contains at least one
	// backslash escape sequence.
	FlagEscaped Flags = 0x40000000
)

// Has returns true if all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Span is a range between two positions. End is exclusive.
type Span struct {
	Start Position
	End   Position
}

// NoSpan is the sentinel for an absent span.
//
//nolint:gochecknoglobals // Immutable sentinel value.
var NoSpan = Span{Start: NoPosition, End: NoPosition}

// Valid returns true if both ends are set.
func (s Span) Valid() bool {
	return s.Start.Valid() && s.End.Valid()
}

// IsEmpty returns true if the span covers no characters.
func (s Span) IsEmpty() bool {
	return s.Start.Codepoint >= s.End.Codepoint
}

// Len returns the number of codepoints covered by the span.
func (s Span) Len() int {
	if !s.Valid() || s.IsEmpty() {
		return 0
	}
	return s.End.Codepoint - s.Start.Codepoint
}

// ByteLen returns the number of bytes covered by the span.
func (s Span) ByteLen() int {
	if !s.Valid() || s.End.Byte <= s.Start.Byte {
		return 0
	}
	return s.End.Byte - s.Start.Byte
}

// Contains returns true if other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Valid() && other.Valid() &&
		s.Start.Codepoint <= other.Start.Codepoint &&
		other.End.Codepoint <= s.End.Codepoint
}

// Tag annotates one block or inline construct of a Markdown document with
// offsets into the original text.
type Tag struct {
	// Kind classifies the construct.
	Kind Kind

	// Flags holds attributes such as FlagEscaped.
	Flags Flags

	// Weight is the header level, list nesting level or emphasis strength.
	Weight int

	// Span is the full extent of the construct including its markers.
	Span Span

	// Text is the meaningful content with markers excluded.
	Text Span

	// Extra holds the URL of a Link between its parentheses.
	Extra Span
}

// newTag returns a tag of the given kind with all spans unset.
func newTag(kind Kind) Tag {
	return Tag{
		Kind:   kind,
		Weight: 1,
		Span:   NoSpan,
		Text:   NoSpan,
		Extra:  NoSpan,
	}
}

// Valid returns true if the tag has a kind.
func (t Tag) Valid() bool {
	return t.Kind != KindInvalid
}

// HasExtra returns true if the tag carries an extra span, i.e. a link URL.
func (t Tag) HasExtra() bool {
	return t.Extra.Valid()
}
