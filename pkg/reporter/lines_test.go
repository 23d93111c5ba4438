package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

func TestLineIndexLocate(t *testing.T) {
	t.Parallel()

	content := []byte("ab\né€x\n\nlast")
	idx := newLineIndex(content)

	tests := []struct {
		name      string
		pos       tagfinder.Position
		line, col int
	}{
		{name: "start", pos: tagfinder.Position{Codepoint: 0, Byte: 0}, line: 1, col: 1},
		{name: "newline", pos: tagfinder.Position{Codepoint: 2, Byte: 2}, line: 1, col: 3},
		{name: "second line", pos: tagfinder.Position{Codepoint: 3, Byte: 3}, line: 2, col: 1},
		{name: "after multibyte", pos: tagfinder.Position{Codepoint: 5, Byte: 8}, line: 2, col: 3},
		{name: "blank line", pos: tagfinder.Position{Codepoint: 7, Byte: 10}, line: 3, col: 1},
		{name: "end", pos: tagfinder.EndPosition(content), line: 4, col: 5},
		{name: "unset", pos: tagfinder.NoPosition, line: 0, col: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, col := idx.locate(tt.pos)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.col, col)
		})
	}
}
