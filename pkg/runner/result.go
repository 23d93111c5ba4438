package runner

import (
	"time"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// FileOutcome holds the tags found in one file.
type FileOutcome struct {
	// Path is the file path that was processed, or "-" for stdin.
	Path string

	// Content is the file content the tag positions refer to.
	Content []byte

	// Tags is the tag sequence for Content.
	Tags []tagfinder.Tag

	// Duration is the time spent extracting tags.
	Duration time.Duration

	// Error is set if the file could not be read.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// BytesProcessed is the total size of processed content.
	BytesProcessed int

	// TagsTotal is the number of tags across all files.
	TagsTotal int

	// TagsByKind maps tag kinds to counts.
	TagsByKind map[tagfinder.Kind]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		TagsByKind: make(map[tagfinder.Kind]int),
	}
}

// NewResult builds a result from outcomes that were produced outside Run,
// such as stdin input.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{
		Files: make([]FileOutcome, 0, len(outcomes)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.BytesProcessed += len(outcome.Content)
	r.Stats.TagsTotal += len(outcome.Tags)
	for _, tag := range outcome.Tags {
		r.Stats.TagsByKind[tag.Kind]++
	}
}
