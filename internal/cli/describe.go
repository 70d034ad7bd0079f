package cli

import (
	"github.com/spf13/cobra"

	"shotfix/internal/app"
	"shotfix/internal/config"
	"shotfix/internal/domain"
	appErrors "shotfix/internal/errors"
)

func newDescribeCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Explain what a conversion with the given flags would do",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := newDeps(cmd, flags)
			if err != nil {
				return err
			}
			settings := d.cfg.Settings
			if settings.ShouldRename {
				if err := domain.ValidateInsertText(settings.InsertText); err != nil {
					app.ReportTextError(d.printer, err)
					return appErrors.Wrap(appErrors.InvalidText, "validate", "", err)
				}
			}
			d.printer.PrintBehavior(settings)
			return nil
		},
	}
}
