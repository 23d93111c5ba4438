package tagfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

func TestPositionAdvance(t *testing.T) {
	t.Parallel()

	// a (1 byte), é (2), € (3), 😀 (4)
	text := []byte("aé€😀")

	tests := []struct {
		name  string
		text  []byte
		from  tagfinder.Position
		steps int
		want  tagfinder.Position
	}{
		{name: "zero steps", text: text, steps: 0, want: tagfinder.Position{}},
		{name: "ascii", text: text, steps: 1, want: tagfinder.Position{Codepoint: 1, Byte: 1}},
		{name: "two byte", text: text, steps: 2, want: tagfinder.Position{Codepoint: 2, Byte: 3}},
		{name: "three byte", text: text, steps: 3, want: tagfinder.Position{Codepoint: 3, Byte: 6}},
		{name: "four byte", text: text, steps: 4, want: tagfinder.Position{Codepoint: 4, Byte: 10}},
		{name: "past end stops", text: text, steps: 100, want: tagfinder.Position{Codepoint: 4, Byte: 10}},
		{
			name:  "from middle",
			text:  text,
			from:  tagfinder.Position{Codepoint: 2, Byte: 3},
			steps: 1,
			want:  tagfinder.Position{Codepoint: 3, Byte: 6},
		},
		{name: "stops at NUL", text: []byte("ab\x00cd"), steps: 4, want: tagfinder.Position{Codepoint: 2, Byte: 2}},
		{name: "invalid lead byte", text: []byte("\xffa"), steps: 1, want: tagfinder.Position{Codepoint: 1, Byte: 1}},
		{name: "truncated sequence", text: []byte("\xe2\x82"), steps: 5, want: tagfinder.Position{Codepoint: 2, Byte: 2}},
		{name: "unset stays unset", text: text, from: tagfinder.NoPosition, steps: 2, want: tagfinder.NoPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.Advance(tt.text, tt.steps))
		})
	}
}

func TestPositionRetreat(t *testing.T) {
	t.Parallel()

	text := []byte("aé€😀")
	end := tagfinder.EndPosition(text)

	assert.Equal(t, tagfinder.Position{Codepoint: 3, Byte: 6}, end.Retreat(text, 1))
	assert.Equal(t, tagfinder.Position{Codepoint: 1, Byte: 1}, end.Retreat(text, 3))
	assert.Equal(t, tagfinder.StartPosition(), end.Retreat(text, 10))
	assert.Equal(t, tagfinder.NoPosition, tagfinder.NoPosition.Retreat(text, 1))

	malformed := []byte("\xe2\x82a")
	malformedEnd := tagfinder.EndPosition(malformed)
	assert.Equal(t, tagfinder.Position{Codepoint: 3, Byte: 3}, malformedEnd)
	assert.Equal(t, tagfinder.Position{Codepoint: 1, Byte: 1}, malformedEnd.Retreat(malformed, 2))
}

// A lead byte without its continuation bytes is one codepoint of width one,
// and the ASCII byte after it is a codepoint of its own.
func TestPositionTruncatedLeadByte(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    []byte
		wantEnd tagfinder.Position
		wantOne tagfinder.Position
	}{
		{
			name:    "lone three-byte lead",
			text:    []byte("\xe2a"),
			wantEnd: tagfinder.Position{Codepoint: 2, Byte: 2},
			wantOne: tagfinder.Position{Codepoint: 1, Byte: 1},
		},
		{
			name:    "lone four-byte lead",
			text:    []byte("\xf0ab"),
			wantEnd: tagfinder.Position{Codepoint: 3, Byte: 3},
			wantOne: tagfinder.Position{Codepoint: 1, Byte: 1},
		},
		{
			name:    "complete three-byte sequence",
			text:    []byte("€a"),
			wantEnd: tagfinder.Position{Codepoint: 2, Byte: 4},
			wantOne: tagfinder.Position{Codepoint: 1, Byte: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			end := tagfinder.EndPosition(tt.text)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantOne, tagfinder.StartPosition().Advance(tt.text, 1))
			assert.Equal(t, tagfinder.StartPosition(), end.Retreat(tt.text, end.Codepoint))
		})
	}
}

func TestPositionRoundTrip(t *testing.T) {
	t.Parallel()

	text := []byte("héllo wörld ✓ 😀!")
	end := tagfinder.EndPosition(text)
	assert.Equal(t, len(text), end.Byte)

	for steps := 0; steps <= end.Codepoint; steps++ {
		pos := tagfinder.StartPosition().Advance(text, steps)
		assert.Equal(t, steps, pos.Codepoint)
		assert.Equal(t, pos, end.Retreat(text, end.Codepoint-steps), "steps %d", steps)
	}
}

func TestPositionCompare(t *testing.T) {
	t.Parallel()

	first := tagfinder.Position{Codepoint: 1, Byte: 1}
	second := tagfinder.Position{Codepoint: 2, Byte: 3}

	assert.True(t, first.Before(second))
	assert.False(t, second.Before(first))
	assert.True(t, second.After(first))
	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, 1, second.Compare(first))
	assert.Equal(t, 0, first.Compare(first))

	assert.True(t, first.Valid())
	assert.False(t, tagfinder.NoPosition.Valid())
}
