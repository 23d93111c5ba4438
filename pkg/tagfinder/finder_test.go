package tagfinder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// tag builds an expected tag over ASCII offsets.
func tag(kind tagfinder.Kind, weight int, span, text tagfinder.Span) tagfinder.Tag {
	return tagfinder.Tag{
		Kind:   kind,
		Weight: weight,
		Span:   span,
		Text:   text,
		Extra:  tagfinder.NoSpan,
	}
}

func withExtra(t tagfinder.Tag, extra tagfinder.Span) tagfinder.Tag {
	t.Extra = extra
	return t
}

func withFlags(t tagfinder.Tag, flags tagfinder.Flags) tagfinder.Tag {
	t.Flags = flags
	return t
}

func TestFindTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []tagfinder.Tag
	}{
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
		{
			name:  "plain line",
			input: "hello",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 5), ascii(0, 5)),
			},
		},
		{
			name:  "strong emphasis",
			input: "**a**",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 5), ascii(0, 5)),
				tag(tagfinder.KindTextStyle, 2, ascii(0, 5), ascii(2, 3)),
			},
		},
		{
			name:  "unmatched leading star is abandoned",
			input: "***a**",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 6), ascii(0, 6)),
				tag(tagfinder.KindTextStyle, 2, ascii(1, 6), ascii(3, 4)),
			},
		},
		{
			name:  "opener shortened to closer",
			input: "**a*",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 4), ascii(0, 4)),
				tag(tagfinder.KindTextStyle, 1, ascii(1, 4), ascii(2, 3)),
			},
		},
		{
			name:  "closer leftover closes next span",
			input: "*a**b*",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 6), ascii(0, 6)),
				tag(tagfinder.KindTextStyle, 1, ascii(0, 3), ascii(1, 2)),
				tag(tagfinder.KindTextStyle, 1, ascii(3, 6), ascii(4, 5)),
			},
		},
		{
			name:  "shortened opener leaves outer star as text",
			input: "A strange ***combination** tag*.",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 32), ascii(0, 32)),
				tag(tagfinder.KindTextStyle, 2, ascii(11, 26), ascii(13, 24)),
			},
		},
		{
			name:  "strikethrough",
			input: "~~gone~~",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 8), ascii(0, 8)),
				tag(tagfinder.KindAlternativeTextStyle, 2, ascii(0, 8), ascii(2, 6)),
			},
		},
		{
			name:  "nested styles",
			input: "**a _b_ c**",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 11), ascii(0, 11)),
				tag(tagfinder.KindTextStyle, 2, ascii(0, 11), ascii(2, 9)),
				tag(tagfinder.KindTextStyle, 1, ascii(4, 7), ascii(5, 6)),
			},
		},
		{
			name:  "single marker stays text",
			input: "a * b",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 5), ascii(0, 5)),
			},
		},
		{
			name:  "link with url",
			input: "[text](url)",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 11), ascii(0, 11)),
				withExtra(tag(tagfinder.KindLink, 1, ascii(0, 11), ascii(1, 5)), ascii(7, 10)),
			},
		},
		{
			name:  "link without url",
			input: "[text]",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 6), ascii(0, 6)),
				tag(tagfinder.KindLink, 1, ascii(0, 6), ascii(1, 5)),
			},
		},
		{
			name:  "url group must be adjacent",
			input: "[a] (b)",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 7), ascii(0, 7)),
				tag(tagfinder.KindLink, 1, ascii(0, 3), ascii(1, 2)),
			},
		},
		{
			name:  "unclosed url group",
			input: "[a](b",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 5), ascii(0, 5)),
				tag(tagfinder.KindLink, 1, ascii(0, 3), ascii(1, 2)),
			},
		},
		{
			name:  "unclosed link is text",
			input: "[a",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 2), ascii(0, 2)),
			},
		},
		{
			name:  "style after link",
			input: "[a](b) *c*",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 10), ascii(0, 10)),
				withExtra(tag(tagfinder.KindLink, 1, ascii(0, 6), ascii(1, 2)), ascii(4, 5)),
				tag(tagfinder.KindTextStyle, 1, ascii(7, 10), ascii(8, 9)),
			},
		},
		{
			name:  "escaped markers",
			input: "\\*not italic\\*",
			want: []tagfinder.Tag{
				withFlags(tag(tagfinder.KindNormal, 1, ascii(0, 14), ascii(1, 14)), tagfinder.FlagEscaped),
			},
		},
		{
			name:  "header",
			input: "# Title\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindHeader, 1, ascii(0, 8), ascii(2, 7)),
			},
		},
		{
			name:  "list items",
			input: "- one\n- two\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindUnorderedList, 1, ascii(0, 6), ascii(2, 5)),
				tag(tagfinder.KindUnorderedList, 1, ascii(6, 12), ascii(8, 11)),
			},
		},
		{
			name:  "nested list item",
			input: "- one\n  - two\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindUnorderedList, 1, ascii(0, 6), ascii(2, 5)),
				tag(tagfinder.KindUnorderedList, 2, ascii(6, 14), ascii(10, 13)),
			},
		},
		{
			name:  "paragraph break",
			input: "a\n\nb\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 2), ascii(0, 1)),
				tag(tagfinder.KindParagraph, 1, ascii(2, 3), ascii(2, 2)),
				tag(tagfinder.KindNormal, 1, ascii(3, 5), ascii(3, 4)),
			},
		},
		{
			name:  "paragraph break without trailing newline",
			input: "a\n\nb",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 2), ascii(0, 1)),
				tag(tagfinder.KindParagraph, 1, ascii(2, 3), ascii(2, 2)),
				tag(tagfinder.KindNormal, 1, ascii(3, 4), ascii(3, 4)),
			},
		},
		{
			name:  "paragraph before header",
			input: "a\n\n# H\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 2), ascii(0, 1)),
				tag(tagfinder.KindParagraph, 2, ascii(2, 3), ascii(2, 2)),
				tag(tagfinder.KindHeader, 1, ascii(3, 7), ascii(5, 6)),
			},
		},
		{
			name:  "paragraph after header",
			input: "# H\ntext\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindHeader, 1, ascii(0, 4), ascii(2, 3)),
				tag(tagfinder.KindParagraph, 1, ascii(4, 4), ascii(4, 4)),
				tag(tagfinder.KindNormal, 1, ascii(4, 9), ascii(4, 8)),
			},
		},
		{
			name:  "paragraph after header before short last line",
			input: "# H\nb",
			want: []tagfinder.Tag{
				tag(tagfinder.KindHeader, 1, ascii(0, 4), ascii(2, 3)),
				tag(tagfinder.KindParagraph, 1, ascii(4, 4), ascii(4, 4)),
				tag(tagfinder.KindNormal, 1, ascii(4, 5), ascii(4, 5)),
			},
		},
		{
			name:  "multiple blank lines form one paragraph",
			input: "a\n\n\n\nb\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 2), ascii(0, 1)),
				tag(tagfinder.KindParagraph, 1, ascii(2, 5), ascii(2, 2)),
				tag(tagfinder.KindNormal, 1, ascii(5, 7), ascii(5, 6)),
			},
		},
		{
			name:  "leading blank lines emit nothing",
			input: "\n\na\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(2, 4), ascii(2, 3)),
			},
		},
		{
			name:  "whitespace line placeholder",
			input: "a\n   \nb\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindNormal, 1, ascii(0, 2), ascii(0, 1)),
				tag(tagfinder.KindNormal, 1, ascii(2, 6), ascii(2, 2)),
				tag(tagfinder.KindNormal, 1, ascii(6, 8), ascii(6, 7)),
			},
		},
		{
			name:  "styles inside header",
			input: "## A *b*\n",
			want: []tagfinder.Tag{
				tag(tagfinder.KindHeader, 2, ascii(0, 9), ascii(3, 8)),
				tag(tagfinder.KindTextStyle, 1, ascii(5, 8), ascii(6, 7)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tagfinder.FindTagsString(tt.input))
		})
	}
}

func TestFindTags_MultiByte(t *testing.T) {
	t.Parallel()

	text := []byte("*é* [ü](ß)")
	tags := tagfinder.FindTags(text)
	require.Len(t, tags, 3)

	style := tags[1]
	assert.Equal(t, tagfinder.KindTextStyle, style.Kind)
	assert.Equal(t, tagfinder.Span{
		Start: tagfinder.Position{Codepoint: 0, Byte: 0},
		End:   tagfinder.Position{Codepoint: 3, Byte: 4},
	}, style.Span)
	assert.Equal(t, "é", tagfinder.ExtractText(text, style))

	link := tags[2]
	assert.Equal(t, tagfinder.KindLink, link.Kind)
	assert.Equal(t, "ü", tagfinder.ExtractText(text, link))
	assert.Equal(t, "ß", tagfinder.ExtractExtra(text, link))
	assert.Equal(t, tagfinder.Position{Codepoint: 10, Byte: 13}, link.Span.End)
}

func TestFindTags_FlagsCopiedToInlineTags(t *testing.T) {
	t.Parallel()

	text := []byte("\\# *a* [b]\n")
	tags := tagfinder.FindTags(text)
	require.Len(t, tags, 3)

	for _, tg := range tags {
		assert.True(t, tg.Flags.Has(tagfinder.FlagEscaped), "%s", tg.Kind)
	}
}

func TestFindTags_StopsAtNUL(t *testing.T) {
	t.Parallel()

	tags := tagfinder.FindTags([]byte("# A\x00\n# B\n"))
	require.Len(t, tags, 1)
	assert.Equal(t, ascii(0, 3), tags[0].Span)
}

// nestedRuns returns text whose emphasis spans nest depth levels deep, one
// run length per level.
func nestedRuns(depth int) string {
	var sb strings.Builder
	for weight := depth; weight >= 1; weight-- {
		sb.WriteString(strings.Repeat("*", weight))
		sb.WriteString("x")
	}
	sb.WriteString("y")
	for weight := 1; weight <= depth; weight++ {
		sb.WriteString("x")
		sb.WriteString(strings.Repeat("*", weight))
	}
	return sb.String()
}

func TestFindTags_DepthLimit(t *testing.T) {
	t.Parallel()

	text := []byte(nestedRuns(100))

	limited := tagfinder.FindTags(text)
	assert.Len(t, limited, 1+tagfinder.DefaultMaxDepth)

	unlimited := tagfinder.FindTagsWithOptions(text, tagfinder.Options{MaxDepth: 1000})
	assert.Len(t, unlimited, 1+100)

	shallow := tagfinder.FindTagsWithOptions([]byte("*a _b_*"), tagfinder.Options{MaxDepth: 1})
	require.Len(t, shallow, 2)
	assert.Equal(t, ascii(0, 7), shallow[1].Span)
}
