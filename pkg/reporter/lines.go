package reporter

import (
	"sort"
	"unicode/utf8"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// lineIndex maps positions to 1-based line and column numbers. Columns count
// codepoints.
type lineIndex struct {
	content []byte
	starts  []int
}

func newLineIndex(content []byte) *lineIndex {
	starts := []int{0}
	for idx, char := range content {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

// locate returns the line and column of pos, or (0, 0) for an unset
// position.
func (l *lineIndex) locate(pos tagfinder.Position) (int, int) {
	if !pos.Valid() {
		return 0, 0
	}

	offset := min(pos.Byte, len(l.content))
	line := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	})

	start := l.starts[line-1]
	return line, utf8.RuneCount(l.content[start:offset]) + 1
}
