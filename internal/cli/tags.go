package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtags/internal/logging"
	"github.com/yaklabco/mdtags/pkg/config"
	"github.com/yaklabco/mdtags/pkg/fsutil"
	"github.com/yaklabco/mdtags/pkg/reporter"
	"github.com/yaklabco/mdtags/pkg/runner"
)

type tagsFlags struct {
	format         string
	jobs           int
	ignore         []string
	extensions     []string
	detectLanguage bool
	maxDepth       int
	noText         bool
	noSummary      bool
	compact        bool
	output         string
}

func newTagsCommand() *cobra.Command {
	flags := &tagsFlags{}

	cmd := &cobra.Command{
		Use:   "tags [paths...]",
		Short: "List the tags of Markdown files",
		Long:  tagsLongDescription,
		Args:  usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(cmd, args, flags)
		},
	}

	addTagsFlags(cmd, flags)

	return cmd
}

const tagsLongDescription = `List the structural tags of Markdown files.

By default, scans all .md and .markdown files in the current directory
and subdirectories. Specify paths to scan specific files or directories,
or "-" to read a single document from standard input.

Examples:
  mdtags tags                        # Scan current directory
  mdtags tags docs/                  # Scan docs directory
  mdtags tags README.md              # Scan single file
  cat README.md | mdtags tags -      # Scan standard input
  mdtags tags --format json          # Output as JSON
  mdtags tags --format flat -o t.txt # Write 15-integer records to a file`

// cliConfig collects the flags the user set into a config overlay.
func (f *tagsFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("extensions") {
		cfg.Extensions = f.extensions
	}
	if changed("detect-language") {
		cfg.DetectLanguage = config.Bool(f.detectLanguage)
	}
	if changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if changed("no-text") {
		cfg.ShowText = config.Bool(!f.noText)
	}
	return cfg
}

func runTags(cmd *cobra.Command, args []string, flags *tagsFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	workDir, err := workingDir()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd, workDir, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting tag run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := collectTags(ctx, cmd.InOrStdin(), args, runOpts)
	if err != nil {
		return err
	}

	logger.Debug("tag run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldTagsTotal, result.Stats.TagsTotal,
	)

	var out bytes.Buffer
	writer := cmd.OutOrStdout()
	if flags.output != "" {
		writer = &out
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      writer,
		Format:      cfg.Format,
		Color:       string(cfg.Color),
		ShowText:    cfg.ShouldShowText(),
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if flags.output != "" {
		written, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, out.Bytes(), fsutil.DefaultFileMode)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Debug("wrote report", logging.FieldOutput, flags.output, "changed", written)
	}

	if result.HasFailures() {
		return ErrFilesFailed
	}
	return nil
}

// collectTags runs the runner over args, or over stdin when the only
// argument is "-".
func collectTags(ctx context.Context, stdin io.Reader, args []string, opts runner.Options) (*runner.Result, error) {
	tagRunner := runner.New()

	if slices.Contains(args, runner.StdinPath) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %q cannot be combined with other paths", ErrUsage, runner.StdinPath)
		}
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return runner.NewResult(tagRunner.Process(ctx, runner.StdinPath, content, opts)), nil
	}

	result, err := tagRunner.Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("tag run failed: %w", err)
	}
	return result, nil
}

func addTagsFlags(cmd *cobra.Command, flags *tagsFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, flat, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions treated as Markdown (default .md, .markdown)")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false,
		"also accept files detected as Markdown by name")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", config.DefaultMaxDepth, "inline nesting limit")
	cmd.Flags().BoolVar(&flags.noText, "no-text", false, "omit extracted tag text from output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the closing summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
}
