package logging

// Field names for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	// Parse options.
	FieldFormat   = "format"
	FieldJobs     = "jobs"
	FieldMaxDepth = "max_depth"

	// Per-file results.
	FieldTags     = "tags"
	FieldBytes    = "bytes"
	FieldDuration = "duration"
	FieldKind     = "kind"

	// Run statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFailed     = "files_failed"
	FieldTagsTotal       = "tags_total"

	// Extraction.
	FieldOffset = "offset"
	FieldLength = "length"

	// Conformance.
	FieldMismatches = "mismatches"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
	FieldGo      = "go"
)
