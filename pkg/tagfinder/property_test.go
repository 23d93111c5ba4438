package tagfinder_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// randomDocument builds text from Markdown-significant pieces so that
// unusual marker combinations come up often.
func randomDocument(rng *rand.Rand) []byte {
	pieces := []string{
		"*", "**", "_", "~~", "[", "]", "(", ")", "#", "# ", "- ", "1. ",
		"  ", " ", "\n", "\n\n", "\\", "a", "word", "é", "€", "😀", "\xff",
	}

	var sb strings.Builder
	for range rng.IntN(40) {
		sb.WriteString(pieces[rng.IntN(len(pieces))])
	}
	return []byte(sb.String())
}

func assertTagInvariants(t *testing.T, text []byte, tags []tagfinder.Tag) {
	t.Helper()

	end := tagfinder.EndPosition(text)
	prevStart := tagfinder.StartPosition()

	for idx, tg := range tags {
		require.True(t, tg.Valid(), "tag %d has no kind in %q", idx, text)
		require.True(t, tg.Span.Valid(), "tag %d span unset in %q", idx, text)
		require.True(t, tg.Text.Valid(), "tag %d text unset in %q", idx, text)

		assert.LessOrEqual(t, tg.Span.Start.Codepoint, tg.Text.Start.Codepoint, "tag %d in %q", idx, text)
		assert.LessOrEqual(t, tg.Text.Start.Codepoint, tg.Text.End.Codepoint, "tag %d in %q", idx, text)
		assert.LessOrEqual(t, tg.Text.End.Codepoint, tg.Span.End.Codepoint, "tag %d in %q", idx, text)
		assert.LessOrEqual(t, tg.Span.End.Codepoint, end.Codepoint, "tag %d in %q", idx, text)
		assert.LessOrEqual(t, tg.Span.End.Byte, end.Byte, "tag %d in %q", idx, text)

		if tg.HasExtra() {
			assert.LessOrEqual(t, tg.Span.Start.Codepoint, tg.Extra.Start.Codepoint, "tag %d in %q", idx, text)
			assert.LessOrEqual(t, tg.Extra.Start.Codepoint, tg.Extra.End.Codepoint, "tag %d in %q", idx, text)
			assert.LessOrEqual(t, tg.Extra.End.Codepoint, tg.Span.End.Codepoint, "tag %d in %q", idx, text)
		}

		assert.GreaterOrEqual(t, tg.Span.Start.Codepoint, prevStart.Codepoint, "tag %d out of order in %q", idx, text)
		prevStart = tg.Span.Start
	}
}

func TestFindTags_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test input

	for range 2000 {
		text := randomDocument(rng)

		tags := tagfinder.FindTags(text)
		assertTagInvariants(t, text, tags)

		assert.Equal(t, tags, tagfinder.FindTags(text), "not idempotent for %q", text)

		for _, tg := range tags {
			extracted, err := tagfinder.ExtractEscaped(text, tg.Text.Start.Byte, tg.Text.Len())
			require.NoError(t, err)
			for pos := strings.IndexByte(extracted, '\\'); pos >= 0; {
				if pos+1 < len(extracted) {
					assert.Equal(t, byte('\n'), extracted[pos+1], "lone backslash in %q from %q", extracted, text)
				}
				next := strings.IndexByte(extracted[pos+1:], '\\')
				if next < 0 {
					break
				}
				pos += next + 1
			}
		}
	}
}

func TestFindTags_InlineTagsFollowTheirSection(t *testing.T) {
	t.Parallel()

	text := []byte("# A *b [c](d)*\n\ntext _e_\n")
	tags := tagfinder.FindTags(text)

	var section tagfinder.Tag
	for _, tg := range tags {
		switch tg.Kind {
		case tagfinder.KindParagraph:
			continue
		case tagfinder.KindHeader, tagfinder.KindNormal:
			section = tg
		default:
			assert.True(t, section.Text.Contains(tg.Span), "%s outside %s", tg.Kind, section.Kind)
		}
	}
}
