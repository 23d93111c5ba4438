// Package conformance cross-checks tag output against a CommonMark parser.
// It parses a document with goldmark and lists the ATX headings and inline
// links on which goldmark and tagfinder disagree. The comparison is
// informational: tag output is never adjusted.
package conformance

import (
	"context"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// Flavor identifies the Markdown flavor goldmark parses.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Checker compares tagfinder output with goldmark.
type Checker struct {
	flavor string
	md     goldmark.Markdown
	opts   tagfinder.Options
}

// New creates a Checker for the given flavor. Unknown flavors fall back to
// CommonMark.
func New(flavor string, opts tagfinder.Options) *Checker {
	var gmOpts []goldmark.Option
	switch flavor {
	case FlavorGFM:
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.GFM))
	default:
		flavor = FlavorCommonMark
	}

	return &Checker{
		flavor: flavor,
		md:     goldmark.New(gmOpts...),
		opts:   opts,
	}
}

// Flavor returns the configured Markdown flavor.
func (c *Checker) Flavor() string {
	return c.flavor
}

// Compare parses content with both parsers and reports their differences.
func (c *Checker) Compare(ctx context.Context, content []byte) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compare cancelled: %w", err)
	}

	lines := newLineStarts(content)
	doc := c.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	var want []element
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			if n.Lines().Len() == 0 {
				return ast.WalkContinue, nil
			}
			offset := n.Lines().At(0).Start
			if isATX(content, offset) {
				want = append(want, element{kind: elementHeading, line: lines.line(offset), level: n.Level})
			}
		case *ast.Link:
			if offset, ok := nodeOffset(n); ok {
				want = append(want, element{kind: elementLink, line: lines.line(offset), dest: string(n.Destination)})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk goldmark tree: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compare cancelled: %w", err)
	}

	var got []element
	for _, tag := range tagfinder.FindTagsWithOptions(content, c.opts) {
		line := lines.line(tag.Span.Start.Byte)
		switch tag.Kind {
		case tagfinder.KindHeader:
			got = append(got, element{kind: elementHeading, line: line, level: tag.Weight})
		case tagfinder.KindLink:
			got = append(got, element{kind: elementLink, line: line, dest: tagfinder.LinkTarget(content, tag)})
		}
	}

	report := diff(want, got)
	report.Flavor = c.flavor
	return report, nil
}

// nodeOffset finds a byte offset inside an inline node: the start of its
// first text segment, or the first line of the nearest enclosing block.
func nodeOffset(node ast.Node) (int, bool) {
	var (
		offset int
		found  bool
	)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			offset, found = t.Segment.Start, true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if found {
		return offset, true
	}

	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() == ast.TypeBlock && parent.Lines().Len() > 0 {
			return parent.Lines().At(0).Start, true
		}
	}
	return 0, false
}

// isATX reports whether the heading content at offset is preceded by a
// '#' marker, ignoring blanks in between. Setext headings are not.
func isATX(content []byte, offset int) bool {
	idx := offset - 1
	for idx >= 0 && (content[idx] == ' ' || content[idx] == '\t') {
		idx--
	}
	return idx >= 0 && content[idx] == '#'
}

// lineStarts indexes the byte offset of every line.
type lineStarts []int

func newLineStarts(content []byte) lineStarts {
	starts := lineStarts{0}
	for idx, char := range content {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return starts
}

// line returns the 1-based line holding offset.
func (s lineStarts) line(offset int) int {
	return sort.Search(len(s), func(i int) bool { return s[i] > offset })
}
