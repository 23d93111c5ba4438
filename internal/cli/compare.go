package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtags/internal/logging"
	"github.com/yaklabco/mdtags/internal/ui/pretty"
	"github.com/yaklabco/mdtags/pkg/config"
	"github.com/yaklabco/mdtags/pkg/conformance"
	"github.com/yaklabco/mdtags/pkg/fsutil"
	"github.com/yaklabco/mdtags/pkg/runner"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

type compareFlags struct {
	flavor string
	format string
	ignore []string
}

// fileReport pairs a document with its conformance report.
type fileReport struct {
	Path   string              `json:"path"`
	Report *conformance.Report `json:"report"`
}

func newCompareCommand() *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare [paths...]",
		Short: "Cross-check headers and links against goldmark",
		Long: `Parse Markdown files with goldmark and report the ATX headings and
links whose level or destination differs from the extracted tags, or that
have no tag at all.

The check is informational: tags are never changed by it. The command
exits with status 1 when any difference is found.

Examples:
  mdtags compare                  # Check current directory
  mdtags compare --flavor gfm     # Parse with GitHub Flavored Markdown
  mdtags compare --format json    # Output as JSON`,
		Args: usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.flavor, "flavor", conformance.FlavorCommonMark, "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, flags *compareFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	if flags.flavor != conformance.FlavorCommonMark && flags.flavor != conformance.FlavorGFM {
		return fmt.Errorf("%w: unknown flavor %q", ErrUsage, flags.flavor)
	}
	if flags.format != string(config.FormatText) && flags.format != string(config.FormatJSON) {
		return fmt.Errorf("%w: compare supports text and json output, not %q", ErrUsage, flags.format)
	}

	workDir, err := workingDir()
	if err != nil {
		return err
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}
	cfg, err := loadConfig(ctx, cmd, workDir, cliCfg)
	if err != nil {
		return err
	}

	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir

	files, err := runner.Discover(ctx, opts)
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	checker := conformance.New(flags.flavor, tagfinder.Options{MaxDepth: cfg.MaxDepth})
	reports := make([]fileReport, 0, len(files))
	mismatches := 0

	for _, path := range files {
		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		report, err := checker.Compare(ctx, content)
		if err != nil {
			return fmt.Errorf("compare %s: %w", path, err)
		}
		logger.Debug("compared file", logging.FieldPath, path, logging.FieldMismatches, len(report.Mismatches))

		mismatches += len(report.Mismatches)
		reports = append(reports, fileReport{Path: displayPath(workDir, path), Report: report})
	}

	if flags.format == string(config.FormatJSON) {
		err = writeCompareJSON(cmd.OutOrStdout(), reports)
	} else {
		styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))
		err = writeCompareText(cmd.OutOrStdout(), styles, reports)
	}
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if mismatches > 0 {
		return ErrMismatchesFound
	}
	return nil
}

func writeCompareText(w io.Writer, styles *pretty.Styles, reports []fileReport) error {
	failed := 0
	for _, fr := range reports {
		if fr.Report.OK() {
			continue
		}
		failed++
		if _, err := fmt.Fprintln(w, styles.FilePath.Render(fr.Path)); err != nil {
			return err
		}
		for _, m := range fr.Report.Mismatches {
			if _, err := fmt.Fprintf(w, "  %s\n", styles.Warning.Render(m.String())); err != nil {
				return err
			}
		}
	}

	var summary string
	if failed == 0 {
		summary = styles.Success.Render(fmt.Sprintf("%d files agree with goldmark", len(reports)))
	} else {
		summary = styles.Failure.Render(fmt.Sprintf("%d of %d files differ from goldmark", failed, len(reports)))
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

func writeCompareJSON(w io.Writer, reports []fileReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
