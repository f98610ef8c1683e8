package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mblasco/sixshift/internal/cipher"
)

// SelfTestResult holds the outcome of a full input-space sweep.
// Checked is always 1000000 on completion; FirstBad names the first
// violating input when mismatches or collisions were found.
type SelfTestResult struct {
	Checked    int    `json:"checked"`
	Mismatches int    `json:"mismatches"`
	Collisions int    `json:"collisions"`
	DurationMS int64  `json:"duration_ms"`
	FirstBad   string `json:"first_bad,omitempty"`
}

// NewSelfTestCommand creates the selftest command.
func NewSelfTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Verify the transformation over the full input space",
		Long: `Verify the transformation over all 1,000,000 six-digit inputs.

Checks that decode(encode(x)) == x for every input, and that no two
inputs encode to the same output (the mapping is a bijection). Takes a
fraction of a second.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(rootOpts, cmd)
		},
	}

	return cmd
}

func runSelfTest(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   NewTraceID(),
	}

	start := time.Now()
	result := SelfTestResult{}
	seen := make(map[string]struct{}, 1000000)

	for n := 0; n < 1000000; n++ {
		input := fmt.Sprintf("%06d", n)

		enc, err := cipher.Encode(input)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("%s: encode rejected valid input %s", ErrCodeSelfTest, input), err)
		}
		if _, dup := seen[enc]; dup {
			result.Collisions++
			if result.FirstBad == "" {
				result.FirstBad = input
			}
		}
		seen[enc] = struct{}{}

		dec, err := cipher.Decode(enc)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("%s: decode rejected encode output %s", ErrCodeSelfTest, enc), err)
		}
		if dec != input {
			result.Mismatches++
			if result.FirstBad == "" {
				result.FirstBad = input
			}
		}
		result.Checked++
	}
	result.DurationMS = time.Since(start).Milliseconds()

	formatter.VerboseLog("selftest swept %d inputs in %dms", result.Checked, result.DurationMS)

	if result.Mismatches > 0 || result.Collisions > 0 {
		_ = formatter.Error(ErrCodeSelfTest,
			fmt.Sprintf("property violation: %d mismatches, %d collisions (first at %s)",
				result.Mismatches, result.Collisions, result.FirstBad),
			result)
		return NewExitError(ExitFailure, fmt.Sprintf("%s: selftest failed", ErrCodeSelfTest))
	}

	if formatter.Format == "json" {
		return formatter.Emit(CLIResponse{Status: "ok", Data: result})
	}

	fmt.Fprintf(formatter.Writer, "✓ selftest passed: %d inputs, round-trip and bijection hold (%dms)\n",
		result.Checked, result.DurationMS)
	return nil
}
