// Package runner extracts tags from many Markdown files concurrently.
package runner

import (
	"github.com/yaklabco/mdtags/pkg/config"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// Options controls multi-file tag extraction.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot)
	// considered Markdown. Defaults to config.DefaultExtensions().
	Extensions []string

	// DetectLanguage also accepts files that go-enry classifies as
	// Markdown, whatever their extension.
	DetectLanguage bool

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// MaxDepth bounds inline recursion. 0 means tagfinder.DefaultMaxDepth.
	MaxDepth int
}

// OptionsFromConfig builds runner options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:          paths,
		Extensions:     cfg.Extensions,
		DetectLanguage: cfg.ShouldDetectLanguage(),
		ExcludeGlobs:   cfg.Ignore,
		Jobs:           cfg.Jobs,
		MaxDepth:       cfg.MaxDepth,
	}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// finderOptions returns the tagfinder options for a run.
func (o Options) finderOptions() tagfinder.Options {
	return tagfinder.Options{MaxDepth: o.MaxDepth}
}
