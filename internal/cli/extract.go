package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtags/internal/logging"
	"github.com/yaklabco/mdtags/pkg/config"
	"github.com/yaklabco/mdtags/pkg/fsutil"
	"github.com/yaklabco/mdtags/pkg/runner"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

type extractFlags struct {
	offset int
	length int
	tag    int
	full   bool
}

func newExtractCommand() *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print a range of a document with escapes removed",
		Long: `Print part of a Markdown document with backslash escapes removed.

The range starts at a byte offset and spans a number of codepoints, the
coordinates reported by "mdtags tags". With --tag, the text of the tag at
that index is printed instead. FILE may be "-" for standard input.

Examples:
  mdtags extract README.md --byte 2 --length 5
  mdtags extract README.md --tag 3
  mdtags extract README.md --tag 3 --full`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "byte", 0, "byte offset of the first character")
	cmd.Flags().IntVar(&flags.length, "length", -1, "number of codepoints (-1 = to the end)")
	cmd.Flags().IntVar(&flags.tag, "tag", -1, "index of a tag whose text is printed")
	cmd.Flags().BoolVar(&flags.full, "full", false, "with --tag, include the tag's markers")
	cmd.MarkFlagsMutuallyExclusive("tag", "byte")
	cmd.MarkFlagsMutuallyExclusive("tag", "length")

	return cmd
}

func runExtract(cmd *cobra.Command, path string, flags *extractFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	var (
		content []byte
		err     error
	)
	if path == runner.StdinPath {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = fsutil.ReadFile(ctx, path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var text string
	if cmd.Flags().Changed("tag") {
		text, err = extractTag(cmd, content, flags)
	} else {
		logger.Debug("extracting range", logging.FieldOffset, flags.offset, logging.FieldLength, flags.length)
		text, err = extractRange(content, flags.offset, flags.length)
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// extractRange unescapes length codepoints from offset. A negative length
// runs to the end of the content.
func extractRange(content []byte, offset, length int) (string, error) {
	if length < 0 && offset >= 0 && offset <= len(content) {
		length = tagfinder.EndPosition(content[offset:]).Codepoint
	}

	text, err := tagfinder.ExtractEscaped(content, offset, length)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	return text, nil
}

// extractTag prints the text of one tag, parsed with the configured depth.
func extractTag(cmd *cobra.Command, content []byte, flags *extractFlags) (string, error) {
	ctx := commandContext(cmd)

	workDir, err := workingDir()
	if err != nil {
		return "", err
	}
	cfg, err := loadConfig(ctx, cmd, workDir, &config.Config{})
	if err != nil {
		return "", err
	}

	tags := tagfinder.FindTagsWithOptions(content, tagfinder.Options{MaxDepth: cfg.MaxDepth})
	if flags.tag < 0 || flags.tag >= len(tags) {
		return "", fmt.Errorf("%w: tag %d of %d", tagfinder.ErrInvalidRange, flags.tag, len(tags))
	}

	tag := tags[flags.tag]
	if flags.full {
		return tagfinder.ExtractFull(content, tag), nil
	}
	return tagfinder.ExtractText(content, tag), nil
}
