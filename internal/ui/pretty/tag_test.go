package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtags/internal/ui/pretty"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

func TestFormatTag(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name string
		line pretty.TagLine
		want string
	}{
		{
			name: "header",
			line: pretty.TagLine{Line: 1, Column: 1, Tag: tagfinder.Tag{Kind: tagfinder.KindHeader, Weight: 2}, Text: "Title"},
			want: `  1:1  Header(2) "Title"`,
		},
		{
			name: "link with target",
			line: pretty.TagLine{Line: 3, Column: 7, Tag: tagfinder.Tag{Kind: tagfinder.KindLink, Weight: 1}, Text: "docs", Extra: "https://x"},
			want: `  3:7  Link(1) "docs" -> "https://x"`,
		},
		{
			name: "escaped without text",
			line: pretty.TagLine{Line: 2, Column: 1, Tag: tagfinder.Tag{Kind: tagfinder.KindParagraph, Weight: 1, Flags: tagfinder.FlagEscaped}},
			want: `  2:1  Paragraph(1) [escaped]`,
		},
		{
			name: "newline is quoted",
			line: pretty.TagLine{Line: 1, Column: 3, Tag: tagfinder.Tag{Kind: tagfinder.KindTextStyle, Weight: 1}, Text: "a\nb"},
			want: `  1:3  TextStyle(1) "a\nb"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styles.FormatTag(tt.line))
		})
	}
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.md (1 tag)", styles.FormatFileHeader("a.md", 1))
	assert.Equal(t, "a.md (3 tags)", styles.FormatFileHeader("a.md", 3))
	assert.Equal(t, "a.md", styles.FormatFileHeader("a.md", 0))
	assert.Equal(t, "a.md: error: boom", styles.FormatFileError("a.md", errors.New("boom")))
}
