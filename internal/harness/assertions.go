package harness

import (
	"fmt"
	"strings"

	"github.com/mblasco/sixshift/internal/cipher"
)

// AssertionError is returned when a whole-scenario assertion fails.
// It includes the trace for debugging context.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s %s -> %s%s\n", event.Seq, event.Op, event.Input, event.Output, event.Error)
	}

	return buf.String()
}

// evaluate runs a single assertion over the trace.
func evaluate(assertion Assertion, trace []TraceEvent) error {
	switch assertion.Type {
	case AssertRoundTrip:
		return assertRoundTrip(trace)
	case AssertDistinctOutputs:
		return assertDistinctOutputs(trace)
	}
	return fmt.Errorf("unknown assertion type %q", assertion.Type)
}

// assertRoundTrip checks that every successful encode step's output
// decodes back to the step's input.
func assertRoundTrip(trace []TraceEvent) error {
	for _, event := range trace {
		if event.Op != OpEncode || event.Output == "" {
			continue
		}
		decoded, err := cipher.Decode(event.Output)
		if err != nil || decoded != event.Input {
			return &AssertionError{
				Type:     AssertRoundTrip,
				Expected: fmt.Sprintf("decode(%s) == %s", event.Output, event.Input),
				Actual:   fmt.Sprintf("decode(%s) == %s (err=%v)", event.Output, decoded, err),
				Trace:    trace,
			}
		}
	}
	return nil
}

// assertDistinctOutputs checks that no two encode steps collided.
func assertDistinctOutputs(trace []TraceEvent) error {
	seen := make(map[string]string)
	for _, event := range trace {
		if event.Op != OpEncode || event.Output == "" {
			continue
		}
		if prev, dup := seen[event.Output]; dup && prev != event.Input {
			return &AssertionError{
				Type:     AssertDistinctOutputs,
				Expected: "distinct inputs produce distinct outputs",
				Actual:   fmt.Sprintf("%s and %s both encode to %s", prev, event.Input, event.Output),
				Trace:    trace,
			}
		}
		seen[event.Output] = event.Input
	}
	return nil
}
