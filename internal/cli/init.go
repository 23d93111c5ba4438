package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdtags/internal/logging"
	"github.com/yaklabco/mdtags/pkg/config"
	"github.com/yaklabco/mdtags/pkg/fsutil"
)

// defaultConfigFile is the file written by init.
const defaultConfigFile = ".mdtags.yml"

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .mdtags.yml configuration file",
		Long: `Create a new .mdtags.yml configuration file in the current directory
documenting every setting and its default.

An existing file is only replaced with --force, or after confirmation when
running in a terminal. The previous file is kept with a .bak suffix.

Examples:
  mdtags init                        Create .mdtags.yml with settings commented out
  mdtags init --full                 Write every setting with its default value
  mdtags init --output custom.yml    Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "write settings uncommented with their defaults")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			ok, err := confirmOverwrite(cmd.InOrStdin(), cmd.ErrOrStderr(), flags.output)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q already exists; use --force to overwrite", ErrUsage, flags.output)
			}
		}

		backup, err := fsutil.CreateBackup(ctx, absPath)
		if err != nil {
			return fmt.Errorf("back up %s: %w", flags.output, err)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output, "backup", backup)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}

// confirmOverwrite asks before replacing a file. Without a terminal on
// stdin there is nobody to ask and the answer is no.
func confirmOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return false, nil
	}

	if _, err := fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
