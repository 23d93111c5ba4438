package runner

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// matcher tests slash-separated relative paths against exclude patterns.
// "*" stays within one path segment, "**" crosses segments.
type matcher struct {
	globs []glob.Glob
}

// compileGlobs compiles exclude patterns. It fails on the first malformed
// pattern.
func compileGlobs(patterns []string) (*matcher, error) {
	m := &matcher{globs: make([]glob.Glob, 0, len(patterns))}
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", pattern, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether relPath, or its base name, matches any pattern.
// A directory pattern such as "vendor/**" also matches "vendor" itself.
func (m *matcher) Match(relPath string) bool {
	if m == nil {
		return false
	}

	path := filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, g := range m.globs {
		if g.Match(path) || g.Match(base) || g.Match(path+"/") {
			return true
		}
	}
	return false
}
