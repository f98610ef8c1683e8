package cli

import (
	"github.com/spf13/cobra"

	"github.com/mblasco/sixshift/internal/cipher"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransformOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <number>",
		Short: "Encode a six-digit number",
		Long: `Encode a six-digit number.

The input must be exactly six decimal digits; leading zeros are
significant and preserved.

Example:
  sixshift encode 123456
  018932`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, "encode", cipher.Encode, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "copy the result to the system clipboard")

	return cmd
}
