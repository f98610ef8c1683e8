// Package harness provides conformance testing for the sixshift
// transformation.
//
// Scenarios are YAML files describing a sequence of encode and decode
// steps with expected outputs (or expected rejection codes), plus
// whole-scenario assertions. The harness executes the steps, records a
// trace, and evaluates assertions; traces can additionally be compared
// against golden files for exact regression pinning.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - op: encode
//	    input: "123456"
//	    expect: "018932"
//	  - op: decode
//	    input: "12a456"
//	    expect_error: NON_DIGIT
//	assertions:
//	  - type: roundtrip
//	  - type: distinct_outputs
//
// # Assertion Types
//
//   - roundtrip: every successful encode step's output decodes back to
//     its input
//   - distinct_outputs: no two encode steps produced the same output
//
// The transformation is pure and deterministic, so no clock or token
// fixing is needed for reproducible traces; identical scenarios always
// yield identical traces.
package harness
