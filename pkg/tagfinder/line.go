package tagfinder

// ClassifyLine scans the line of text starting at pos and returns its block
// tag. The previous line's kind is passed as section so list items can only
// open after a paragraph break, a header or another list item.
//
// Scanning stops at maxPos even when the line continues, and the span of a
// line cut short ends at maxPos. An invalid maxPos, or one past the end of
// text, selects the end of text.
//
// A Normal tag with an empty span and no text is returned when pos is at or
// past maxPos.
func ClassifyLine(text []byte, pos, maxPos Position, section Kind) Tag {
	src := newSource(text)
	if !maxPos.Valid() || maxPos.After(src.end) {
		maxPos = src.end
	}
	tag := src.scanLine(pos, maxPos, section)
	if !tag.Valid() {
		tag.Kind = KindNormal
		tag.Span = Span{Start: pos, End: pos}
	}
	return tag
}

// scanLine classifies one line between pos and maxPos. The result is
// invalid when there is nothing left to scan.
//
// Two candidates are tracked in parallel: a normal tag covering all
// non-space content, and a styled tag decided by the first significant
// character (header, list item or plain text).
func (s source) scanLine(pos, maxPos Position, section Kind) Tag {
	if !pos.Before(maxPos) {
		return newTag(KindInvalid)
	}

	styled := newTag(KindInvalid)
	normal := newTag(KindInvalid)
	styled.Span.Start = pos
	normal.Span.Start = pos

	allowNewParagraph := section == KindParagraph || section == KindHeader
	continueList := section.IsList()

	var (
		skipChars      int
		styleDefined   bool
		escaped        bool
		headerSequence bool
	)

	for idx := pos; idx.Before(maxPos); idx = s.advance(idx, 1) {
		chr := s.charAt(idx)
		next := s.charAt(s.advance(idx, 1))
		afterNext := s.charAt(s.advance(idx, 2)) //nolint:mnd // lookahead of two characters

		if skipChars > 0 {
			skipChars--
			continue
		}

		if !escaped && chr == '\\' {
			normal.Flags |= FlagEscaped
			styled.Flags |= FlagEscaped
			escaped = true
			continue
		}

		end := s.advance(idx, 1)
		if escaped {
			if chr != '\n' {
				markTextStart(&normal, idx)
				markTextStart(&styled, idx)
			}
			normal.Text.End = end
			styled.Text.End = end
			escaped = false
			continue
		}

		if chr == '\n' {
			normal.Span.End = end
			styled.Span.End = end
			break
		}

		if chr != ' ' {
			markTextStart(&normal, idx)
			normal.Text.End = end
		}

		offset := idx.Codepoint - pos.Codepoint
		evenIndent := offset%2 == 0
		listAllowed := (allowNewParagraph || continueList) && evenIndent

		switch {
		case !styleDefined:
			switch {
			case chr == '#':
				styled.Kind = KindHeader
				styled.Weight = 1
				styleDefined = true
				headerSequence = true
			case listAllowed && isBullet(chr) && next == ' ':
				styled.Kind = KindUnorderedList
				styled.Weight = 1 + offset/2
				styleDefined = true
				skipChars = 1
			case listAllowed && isDigit(chr) && next == '.' && afterNext == ' ':
				styled.Kind = KindOrderedList
				styled.Weight = 1 + offset/2
				styleDefined = true
				skipChars = 2
			case chr != ' ':
				styled.Kind = KindNormal
				styleDefined = true
			}
		case styled.Kind == KindHeader:
			if chr == '#' && headerSequence {
				styled.Weight++
			} else {
				headerSequence = false
			}
			switch {
			case chr != '#' && chr != ' ' && !styled.Text.Start.Valid():
				styled.Text.Start = idx
				styled.Text.End = end
			case chr != ' ' && styled.Text.Start.Valid() && (chr != '#' || !closesHeader(next)):
				styled.Text.End = end
			}
		case styled.Kind != KindNormal:
			if chr != ' ' {
				markTextStart(&styled, idx)
				styled.Text.End = end
			}
		}
	}

	if styleDefined && styled.Kind != KindNormal && styled.Text.Start.Valid() &&
		styled.Text.End.After(styled.Text.Start) {
		if !styled.Span.End.Valid() {
			styled.Span.End = maxPos
		}
		return styled
	}

	if !normal.Span.End.Valid() {
		normal.Span.End = maxPos
	}
	if !normal.Text.Start.Valid() {
		normal.Text = NoSpan
	}
	normal.Kind = KindNormal
	return normal
}

func markTextStart(tag *Tag, pos Position) {
	if !tag.Text.Start.Valid() {
		tag.Text.Start = pos
	}
}

func isBullet(chr byte) bool {
	return chr == '*' || chr == '-' || chr == '+'
}

func isDigit(chr byte) bool {
	return chr >= '0' && chr <= '9'
}

// closesHeader reports whether a '#' followed by next belongs to the
// closing sequence of a header rather than its content.
func closesHeader(next byte) bool {
	return next == '#' || next == '\n' || next == ' ' || next == 0
}
