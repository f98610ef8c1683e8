package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Valid step operations.
const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// Valid assertion types.
const (
	AssertRoundTrip       = "roundtrip"
	AssertDistinctOutputs = "distinct_outputs"
)

// Scenario defines a conformance test scenario for the transformation.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden
	// file when the scenario is golden-tested.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the scenario as a whole after all steps ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is a single encode or decode invocation with an expectation.
type Step struct {
	// Op is "encode" or "decode".
	Op string `yaml:"op"`

	// Input is the six-digit argument (quoted in YAML so leading
	// zeros survive).
	Input string `yaml:"input"`

	// Expect, when set, is the required output.
	Expect string `yaml:"expect,omitempty"`

	// ExpectError, when set, is the required rejection code
	// (WRONG_LENGTH or NON_DIGIT). Mutually exclusive with Expect.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Assertion is a whole-scenario check evaluated over the trace.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`
}

// LoadScenario reads and validates a scenario from a YAML file.
// Unknown fields are rejected so typos in scenario files fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural requirements before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario must have at least one step")
	}
	for i, step := range s.Steps {
		if step.Op != OpEncode && step.Op != OpDecode {
			return fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
		if step.Expect != "" && step.ExpectError != "" {
			return fmt.Errorf("step %d: expect and expect_error are mutually exclusive", i+1)
		}
	}
	for i, a := range s.Assertions {
		if a.Type != AssertRoundTrip && a.Type != AssertDistinctOutputs {
			return fmt.Errorf("assertion %d: unknown type %q", i+1, a.Type)
		}
	}
	return nil
}
