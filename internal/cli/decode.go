package cli

import (
	"github.com/spf13/cobra"

	"github.com/mblasco/sixshift/internal/cipher"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransformOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode <number>",
		Short: "Decode a previously encoded six-digit number",
		Long: `Decode a previously encoded six-digit number.

Decode is defined over every six-digit input, not only genuine encode
outputs; it cannot tell the difference and does not try to.

Example:
  sixshift decode 018932
  123456`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, "decode", cipher.Decode, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "copy the result to the system clipboard")

	return cmd
}
