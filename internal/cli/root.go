package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shotfix/internal/app"
	"shotfix/internal/config"
	"shotfix/internal/domain"
	appErrors "shotfix/internal/errors"
	"shotfix/internal/infra/codec"
	"shotfix/internal/infra/exif"
	"shotfix/internal/infra/fs"
	"shotfix/internal/logging"
	"shotfix/internal/presentation"
)

var errWriteFailed = errors.New("conversion stopped after a write failure")

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// deps is everything one invocation needs. It is built once per command run
// and handed to the components that use it.
type deps struct {
	cfg     config.Config
	fs      fs.OSFS
	logger  logging.Logger
	printer *presentation.Printer
	useTUI  bool
}

// NewRootCmd creates the root command. Running it converts the source
// directory; the describe subcommand only explains the chosen settings.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shotfix",
		Short:         "Square up wide screenshots",
		Long:          "Shotfix stretches every image wider than it is tall into a square copy sized to its height.",
		Version:       version,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := config.AddFlags(cmd.PersistentFlags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := newDeps(cmd, flags)
		if err != nil {
			return err
		}
		return runConvert(cmd.Context(), d)
	}
	cmd.AddCommand(newDescribeCmd(flags))
	return cmd
}

const rootCmdExample = `  # Convert screenshots in the working directory, writing name_fix.png copies
  shotfix

  # Convert into another folder without renaming
  shotfix --source ~/Pictures/VR --result ~/Pictures/VR-square --rename=false

  # Keep converted names, rename the originals with a prefix instead
  shotfix --rename-original --prefix --text orig-

  # Preview what would happen
  shotfix --dry-run`

func newDeps(cmd *cobra.Command, flags *config.Flags) (deps, error) {
	cfg, err := flags.Resolve()
	if err != nil {
		return deps{}, appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}

	useTUI := !cfg.Plain && !cfg.DryRun && isTerminal(os.Stdout)

	var logWriter io.Writer
	if cfg.Verbose && !useTUI {
		logWriter = cmd.ErrOrStderr()
	}

	return deps{
		cfg:     cfg,
		fs:      fs.OSFS{},
		logger:  logging.New(logWriter, cfg.Verbose),
		printer: &presentation.Printer{Writer: cmd.OutOrStdout(), Verbose: cfg.Verbose},
		useTUI:  useTUI,
	}, nil
}

func runConvert(ctx context.Context, d deps) error {
	settings := d.cfg.Settings
	if err := app.ValidateSettings(d.fs, settings, d.printer); err != nil {
		return err
	}

	fileCodec := codec.New(settings.JPEGQuality)

	if d.cfg.DryRun {
		planner := app.Planner{
			FS:         d.fs,
			Codec:      fileCodec,
			Logger:     d.logger.With("planner"),
			OnProgress: d.printer.PlanProgress,
		}
		plan, err := planner.Plan(ctx, settings)
		if err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "plan", settings.SourceDir, err)
		}
		d.printer.PrintBehavior(settings)
		d.printer.PrintDryRun(plan)
		return nil
	}

	resizer := &app.BatchResizer{
		FS:     d.fs,
		Codec:  fileCodec,
		Exif:   exif.Reader{},
		Logger: d.logger.With("resizer"),
	}

	var (
		summary domain.Summary
		err     error
	)
	if d.useTUI {
		summary, err = runTUI(ctx, resizer, settings)
	} else {
		summary, err = runPlain(ctx, resizer, settings, d.printer)
	}
	if err != nil {
		return err
	}
	if summary.WriteFailed {
		return appErrors.Wrap(appErrors.IOFailure, "write", settings.ResultDir, errWriteFailed)
	}
	return nil
}

func runPlain(ctx context.Context, resizer *app.BatchResizer, settings domain.Settings, printer *presentation.Printer) (domain.Summary, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	printer.PrintBehavior(settings)
	summary, err := resizer.Execute(ctx, settings, printer, nil)
	if err != nil {
		return summary, err
	}
	printer.PrintSummary(summary)
	return summary, nil
}
