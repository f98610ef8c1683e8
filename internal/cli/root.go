package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mblasco/sixshift/internal/clipboard"
	"github.com/mblasco/sixshift/internal/config"
)

// RootOptions holds global flags and resolved state for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string // explicit --config path ("" = default location)

	// Config is the loaded configuration, populated before any RunE.
	Config config.Config

	// Clipboard is the copier used by --copy and the TUI. Overridable
	// in tests.
	Clipboard clipboard.Copier
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sixshift CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(clipboard.System{})
}

func newRootCommand(copier clipboard.Copier) *cobra.Command {
	opts := &RootOptions{Clipboard: copier}

	cmd := &cobra.Command{
		Use:   "sixshift",
		Short: "Encode and decode six-digit numbers",
		Long: `sixshift encodes a six-digit decimal number into another six-digit
number via a fixed reversible digit transformation, and decodes it back.

The transformation shifts every digit by +7 mod 10 and then swaps digit
positions pairwise (1-3, 2-4, 5-6). It is reversible by construction and
carries no cryptographic weight.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(opts, cmd); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/sixshift/config.yaml)")

	// Add subcommands
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewSelfTestCommand(opts))
	cmd.AddCommand(NewUICommand(opts))

	return cmd
}

// loadConfig resolves and loads the config file, then lets it supply
// defaults for flags the user did not set explicitly.
func loadConfig(opts *RootOptions, cmd *cobra.Command) error {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// No resolvable config dir: run on built-in defaults.
			opts.Config = config.Default()
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("%s: config error", ErrCodeConfig), err)
	}
	opts.Config = cfg

	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.Format = cfg.Format
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
