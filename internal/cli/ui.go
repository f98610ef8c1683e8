package cli

import (
	"github.com/spf13/cobra"

	"github.com/mblasco/sixshift/internal/logger"
	"github.com/mblasco/sixshift/internal/tui"
)

// NewUICommand creates the ui command, launching the interactive
// terminal interface.
func NewUICommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal interface",
		Long: `Open the interactive terminal interface.

Presents a menu to encode or decode a six-digit number, with the result
shown on screen and an option to copy it to the clipboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logger.Setup(logger.Config{Debug: rootOpts.Verbose})
			if err == nil {
				defer cleanup()
			}
			// A failed logger setup is not fatal; the session just runs
			// without a log file.

			return tui.Run(tui.Deps{
				Clipboard: rootOpts.Clipboard,
				Accent:    rootOpts.Config.Accent,
			})
		},
	}

	return cmd
}
