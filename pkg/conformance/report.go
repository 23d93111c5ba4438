package conformance

import "fmt"

// MismatchKind classifies a disagreement.
type MismatchKind string

// Mismatch kinds.
const (
	HeadingLevel    MismatchKind = "heading-level"
	HeadingMissing  MismatchKind = "heading-missing"
	LinkDestination MismatchKind = "link-destination"
	LinkMissing     MismatchKind = "link-missing"
)

// Mismatch is one construct goldmark found that the tags render
// differently or not at all.
type Mismatch struct {
	Kind MismatchKind `json:"kind"`
	Line int          `json:"line"`
	Want string       `json:"want"`
	Got  string       `json:"got,omitempty"`
}

// String formats the mismatch as "line N: kind: want X, got Y".
func (m Mismatch) String() string {
	if m.Got == "" {
		return fmt.Sprintf("line %d: %s: want %s", m.Line, m.Kind, m.Want)
	}
	return fmt.Sprintf("line %d: %s: want %s, got %s", m.Line, m.Kind, m.Want, m.Got)
}

// Report lists the differences found in one document.
type Report struct {
	Flavor     string     `json:"flavor"`
	Headings   int        `json:"headings"`
	Links      int        `json:"links"`
	Mismatches []Mismatch `json:"mismatches"`
}

// OK reports whether both parsers agree.
func (r *Report) OK() bool {
	return r == nil || len(r.Mismatches) == 0
}

type elementKind int

const (
	elementHeading elementKind = iota
	elementLink
)

// element is a heading or link located by line.
type element struct {
	kind  elementKind
	line  int
	level int
	dest  string
}

// diff pairs every wanted element with an unused element of the same kind
// on the same line, exact matches first. Got elements without a
// counterpart are not reported.
func diff(want, got []element) *Report {
	report := &Report{Mismatches: make([]Mismatch, 0)}
	used := make([]bool, len(got))
	matched := make([]int, len(want))

	for wi, w := range want {
		if w.kind == elementHeading {
			report.Headings++
		} else {
			report.Links++
		}

		matched[wi] = -1
		for gi, g := range got {
			if !used[gi] && g == w {
				used[gi] = true
				matched[wi] = gi
				break
			}
		}
	}

	for wi, w := range want {
		if matched[wi] >= 0 {
			continue
		}

		fallback := -1
		for gi, g := range got {
			if !used[gi] && g.kind == w.kind && g.line == w.line {
				fallback = gi
				break
			}
		}

		if fallback < 0 {
			report.Mismatches = append(report.Mismatches, missing(w))
			continue
		}
		used[fallback] = true
		report.Mismatches = append(report.Mismatches, mismatch(w, got[fallback]))
	}

	return report
}

func mismatch(w, g element) Mismatch {
	if w.kind == elementHeading {
		return Mismatch{Kind: HeadingLevel, Line: w.line, Want: fmt.Sprintf("h%d", w.level), Got: fmt.Sprintf("h%d", g.level)}
	}
	return Mismatch{Kind: LinkDestination, Line: w.line, Want: fmt.Sprintf("%q", w.dest), Got: fmt.Sprintf("%q", g.dest)}
}

func missing(w element) Mismatch {
	if w.kind == elementHeading {
		return Mismatch{Kind: HeadingMissing, Line: w.line, Want: fmt.Sprintf("h%d", w.level)}
	}
	return Mismatch{Kind: LinkMissing, Line: w.line, Want: fmt.Sprintf("%q", w.dest)}
}
