// Package tagfinder finds Markdown structure as a flat list of tags.
//
// A Tag describes one block construct (header, list item, plain line,
// paragraph break) or inline construct (emphasis, strikethrough, link) and
// carries offsets into the original buffer. Every offset is a Position that
// counts both codepoints and bytes, so callers can style the original text in
// place without building a syntax tree.
//
// Parsing happens line by line. ClassifyLine decides the block kind of a
// line, after which the inline markers of its text are paired into nested
// tags. FindTags drives both over a whole document and inserts Paragraph
// tags over the spacing between blocks.
//
// # Escapes
//
// A backslash makes the next character literal. Tags covering an escape carry
// FlagEscaped; ExtractText and ExtractEscaped return their text with the
// backslashes removed.
//
// # Flat records
//
// Tag.Record and Records produce the fixed-width integer form of a tag list,
// fifteen fields per tag. FromRecords reverses it.
package tagfinder
