package tagfinder

// Options configures a parse.
type Options struct {
	// MaxDepth bounds nesting of inline spans. Zero or negative selects
	// DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the options used by FindTags.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// FindTags returns the tags of a Markdown document in document order.
// Each line contributes its block tag followed by its inline tags, and
// Paragraph tags are inserted over the spacing between blocks.
//
// FindTags never fails: malformed input degrades to plain text tags. Text
// after the first NUL byte is ignored.
func FindTags(text []byte) []Tag {
	return FindTagsWithOptions(text, DefaultOptions())
}

// FindTagsString is FindTags for string input.
func FindTagsString(text string) []Tag {
	return FindTags([]byte(text))
}

// FindTagsWithOptions is FindTags with explicit options.
func FindTagsWithOptions(text []byte, opts Options) []Tag {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	src := newSource(text)
	asm := assembler{src: src, maxDepth: maxDepth, paragraphStart: NoPosition}
	return asm.run()
}

// assembler walks a document line by line. The kind of the previous line is
// the only state carried from one classification to the next.
type assembler struct {
	src            source
	maxDepth       int
	tags           []Tag
	paragraphStart Position
}

func (a *assembler) run() []Tag {
	curLine := a.src.scanLine(StartPosition(), a.src.end, KindParagraph)

	for curLine.Valid() {
		hasNextLine := curLine.Span.End.Before(a.src.end)
		emptyLine := a.src.isEmptyLine(curLine)

		curKind := curLine.Kind
		if emptyLine {
			curKind = KindParagraph
		}

		nextLine := newTag(KindInvalid)
		if hasNextLine {
			nextLine = a.src.scanLine(curLine.Span.End, a.src.end, curKind)
		}

		switch {
		case curLine.Text.Start.Valid():
			a.tags = a.src.appendStyleTags(a.tags, curLine, a.maxDepth)
		case !emptyLine:
			a.tags = append(a.tags, placeholder(curLine))
		}

		if nextLine.Valid() {
			a.insertParagraph(curLine, nextLine)
		}
		curLine = nextLine
	}
	return a.tags
}

// insertParagraph opens a paragraph region after a header or before a header
// or blank line, and closes it at the first non-blank line that follows.
func (a *assembler) insertParagraph(curLine, nextLine Tag) {
	nextEmpty := a.src.isEmptyLine(nextLine)
	startNew := curLine.Kind == KindHeader || nextLine.Kind == KindHeader || nextEmpty

	if startNew && len(a.tags) > 0 && !a.paragraphStart.Valid() {
		a.paragraphStart = curLine.Span.End
	}
	if nextEmpty || !a.paragraphStart.Valid() {
		return
	}

	paragraph := newTag(KindParagraph)
	paragraph.Span = Span{Start: a.paragraphStart, End: nextLine.Span.Start}
	paragraph.Text = Span{Start: a.paragraphStart, End: a.paragraphStart}
	if nextLine.Kind == KindHeader {
		paragraph.Weight = 2
	}
	a.tags = append(a.tags, paragraph)
	a.paragraphStart = NoPosition
}

// isEmptyLine reports whether a line consists of its newline only. A final
// one-character line without a newline is not empty.
func (s source) isEmptyLine(line Tag) bool {
	return line.Span.Start.Codepoint+1 == line.Span.End.Codepoint &&
		s.charAt(line.Span.Start) == '\n'
}

// placeholder anchors a zero-width tag at the start of a line that has no
// text of its own.
func placeholder(line Tag) Tag {
	tag := line
	tag.Text = Span{Start: line.Span.Start, End: line.Span.Start}
	tag.Extra = NoSpan
	return tag
}
