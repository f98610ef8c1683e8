package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mblasco/sixshift/internal/cipher"
)

// TransformOptions holds flags shared by the encode and decode commands.
type TransformOptions struct {
	*RootOptions
	Copy bool
}

// TransformResult is the success payload for encode and decode.
type TransformResult struct {
	Op     string `json:"op"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Copied bool   `json:"copied,omitempty"`
}

// runTransform executes one encode or decode invocation end to end:
// validation and transformation via the cipher package, optional
// clipboard copy, and output in the configured format.
func runTransform(opts *TransformOptions, op string, fn func(string) (string, error), input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		TraceID:   NewTraceID(),
	}

	output, err := fn(input)
	if err != nil {
		var ie *cipher.InvalidInputError
		if errors.As(err, &ie) {
			_ = formatter.Error(ErrCodeInvalidInput, err.Error(), map[string]string{
				"op":    op,
				"input": input,
			})
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidInput, err))
		}
		return err
	}

	formatter.VerboseLog("%s %s -> %s (trace %s)", op, input, output, formatter.TraceID)

	result := TransformResult{Op: op, Input: input, Output: output}

	if opts.Copy || opts.Config.Copy {
		if copyErr := opts.Clipboard.Copy(output); copyErr != nil {
			_ = formatter.Error(ErrCodeClipboard, copyErr.Error(), nil)
			return WrapExitError(ExitFailure, fmt.Sprintf("%s: clipboard copy failed", ErrCodeClipboard), copyErr)
		}
		result.Copied = true
		formatter.VerboseLog("copied %s to clipboard", output)
	}

	if formatter.Format == "json" {
		return formatter.Emit(CLIResponse{Status: "ok", Data: result})
	}

	// Text output is just the transformed number, so the command
	// composes in shell pipelines.
	fmt.Fprintln(formatter.Writer, output)
	return nil
}
