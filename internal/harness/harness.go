package harness

import (
	"errors"
	"fmt"

	"github.com/mblasco/sixshift/internal/cipher"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq    int    `json:"seq"`
	Op     string `json:"op"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"` // rejection code, if the input was invalid
}

// Result is the outcome of running a scenario.
type Result struct {
	ScenarioName string
	Passed       bool
	Trace        []TraceEvent
	Failures     []string
}

// Run executes a scenario's steps against the cipher and evaluates its
// assertions. A non-nil error means the scenario itself is unrunnable;
// expectation and assertion failures are reported in Result.Failures
// with Passed == false.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		ScenarioName: scenario.Name,
		Trace:        make([]TraceEvent, 0, len(scenario.Steps)),
	}

	for i, step := range scenario.Steps {
		event := TraceEvent{Seq: i + 1, Op: step.Op, Input: step.Input}

		fn := cipher.Encode
		if step.Op == OpDecode {
			fn = cipher.Decode
		}

		output, err := fn(step.Input)
		switch {
		case err != nil:
			var ie *cipher.InvalidInputError
			if !errors.As(err, &ie) {
				return nil, fmt.Errorf("step %d: unexpected error: %w", i+1, err)
			}
			event.Error = string(ie.Code)
		default:
			event.Output = output
		}
		result.Trace = append(result.Trace, event)

		if failure := checkExpectation(step, event); failure != "" {
			result.Failures = append(result.Failures, failure)
		}
	}

	for _, assertion := range scenario.Assertions {
		if err := evaluate(assertion, result.Trace); err != nil {
			result.Failures = append(result.Failures, err.Error())
		}
	}

	result.Passed = len(result.Failures) == 0
	return result, nil
}

// checkExpectation compares one step's outcome against its expect or
// expect_error clause. Returns "" when satisfied.
func checkExpectation(step Step, event TraceEvent) string {
	switch {
	case step.ExpectError != "":
		if event.Error != step.ExpectError {
			return fmt.Sprintf("step %d: expected rejection %s, got output %q error %q",
				event.Seq, step.ExpectError, event.Output, event.Error)
		}
	case event.Error != "":
		return fmt.Sprintf("step %d: %s %q unexpectedly rejected (%s)",
			event.Seq, step.Op, step.Input, event.Error)
	case step.Expect != "" && event.Output != step.Expect:
		return fmt.Sprintf("step %d: expected %q, got %q", event.Seq, step.Expect, event.Output)
	}
	return ""
}
