package tagfinder

import "sort"

// DefaultMaxDepth bounds how deeply inline spans are resolved inside each
// other. Content nested deeper stays plain text.
const DefaultMaxDepth = 64

// marker is a delimiter run or bracket found while tokenizing a line.
type marker struct {
	char   byte
	weight int
	pos    Position
}

func isStyleChar(chr byte) bool {
	return chr == '*' || chr == '_' || chr == '~'
}

func isBracketChar(chr byte) bool {
	return chr == '[' || chr == ']' || chr == '(' || chr == ')'
}

// resolver pairs markers of one line into inline tags.
type resolver struct {
	src      source
	markers  []marker
	flags    Flags
	maxDepth int
	found    []Tag
}

// appendStyleTags appends the section tag followed by the inline tags found
// within its text span, ordered by start position.
func (s source) appendStyleTags(tags []Tag, section Tag, maxDepth int) []Tag {
	tags = append(tags, section)

	res := &resolver{
		src:      s,
		markers:  s.tokenize(section.Text),
		flags:    section.Flags,
		maxDepth: maxDepth,
	}
	res.process(0, len(res.markers), 0)

	sort.SliceStable(res.found, func(i, j int) bool {
		return res.found[i].Span.Start.Before(res.found[j].Span.Start)
	})
	return append(tags, res.found...)
}

// tokenize collects markers from a text span in one left-to-right pass.
// Runs of the same style character merge into one marker; a backslash hides
// the character after it.
func (s source) tokenize(text Span) []marker {
	var (
		markers   []marker
		runChar   byte
		runWeight int
	)

	for idx := text.Start; idx.Before(text.End); idx = s.advance(idx, 1) {
		chr := s.charAt(idx)
		if runChar != 0 {
			if chr == runChar {
				runWeight++
			} else {
				markers = append(markers, marker{char: runChar, weight: runWeight, pos: s.retreat(idx, runWeight)})
				runChar = 0
			}
		}
		if runChar == 0 {
			switch {
			case isStyleChar(chr):
				runChar = chr
				runWeight = 1
			case isBracketChar(chr):
				markers = append(markers, marker{char: chr, weight: 1, pos: idx})
			}
		}
		if chr == '\\' {
			idx = s.advance(idx, 1)
		}
	}

	if runChar != 0 {
		markers = append(markers, marker{char: runChar, weight: runWeight, pos: s.retreat(text.End, runWeight)})
	}
	return markers
}

// process resolves the markers in [start, end).
func (r *resolver) process(start, end, depth int) {
	for start < end {
		if isBracketChar(r.markers[start].char) {
			start = r.processBracket(start, end)
		} else {
			start = r.processStyle(start, end, depth)
		}
	}
}

// processBracket handles a bracket marker and returns the index to continue
// from. Only '[' can open a link; other brackets are inert here.
func (r *resolver) processBracket(start, end int) int {
	open := r.markers[start]
	if open.char != '[' {
		return start + 1
	}

	link := newTag(KindInvalid)
	linkIndex := -1
	parenIndex := -1

	for idx := start + 1; idx < end; idx++ {
		check := r.markers[idx]
		switch {
		case check.char == ']' && !link.Valid():
			link.Kind = KindLink
			link.Flags = r.flags
			link.Span = Span{Start: open.pos, End: r.src.advance(check.pos, check.weight)}
			link.Text = Span{Start: r.src.advance(open.pos, open.weight), End: check.pos}
			r.found = append(r.found, link)
			linkIndex = len(r.found) - 1

			next := idx + 1
			if next >= end {
				return next
			}
			paren := r.markers[next]
			if paren.char != '(' || paren.pos != link.Span.End {
				return next
			}
			parenIndex = next
		case check.char == ')' && link.Valid():
			paren := r.markers[parenIndex]
			link.Extra = Span{Start: r.src.advance(paren.pos, paren.weight), End: check.pos}
			link.Span.End = r.src.advance(check.pos, check.weight)
			r.found[linkIndex] = link
			return idx + 1
		}
	}

	if parenIndex >= 0 {
		// Unclosed URL group: the link stands without it.
		return parenIndex + 1
	}
	return start + 1
}

// processStyle pairs the style marker at start with the first later marker of
// the same character and at least the same weight. Without a partner the
// marker gives up its leading character and tries again until only one is
// left, which then stays plain text.
func (r *resolver) processStyle(start, end, depth int) int {
	open := &r.markers[start]

	for idx := start + 1; idx < end; idx++ {
		closer := &r.markers[idx]
		if closer.char != open.char || closer.weight < open.weight {
			continue
		}

		kind := KindTextStyle
		if open.char == '~' {
			kind = KindAlternativeTextStyle
		}
		tag := newTag(kind)
		tag.Flags = r.flags
		tag.Weight = open.weight
		tag.Span = Span{Start: open.pos, End: r.src.advance(closer.pos, open.weight)}
		tag.Text = Span{Start: r.src.advance(open.pos, open.weight), End: closer.pos}
		r.found = append(r.found, tag)

		if depth+1 < r.maxDepth {
			r.process(start+1, idx, depth+1)
		}

		if closer.weight > open.weight {
			// The rest of the closing run may still close a later span.
			closer.weight -= open.weight
			closer.pos = r.src.advance(closer.pos, open.weight)
			return idx
		}
		return idx + 1
	}

	if open.weight > 1 {
		open.weight--
		open.pos = r.src.advance(open.pos, 1)
		return start
	}
	return start + 1
}
