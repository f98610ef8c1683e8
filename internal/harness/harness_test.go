package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllExpectationsMet(t *testing.T) {
	s := &Scenario{
		Name: "ok",
		Steps: []Step{
			{Op: OpEncode, Input: "123456", Expect: "018932"},
			{Op: OpDecode, Input: "018932", Expect: "123456"},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Failures)
	require.Len(t, result.Trace, 2)
	assert.Equal(t, "018932", result.Trace[0].Output)
}

func TestRun_WrongExpectationFails(t *testing.T) {
	s := &Scenario{
		Name:  "wrong",
		Steps: []Step{{Op: OpEncode, Input: "123456", Expect: "999999"}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], `expected "999999"`)
}

func TestRun_ExpectedRejection(t *testing.T) {
	s := &Scenario{
		Name:  "rejection",
		Steps: []Step{{Op: OpEncode, Input: "12345", ExpectError: "WRONG_LENGTH"}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, "WRONG_LENGTH", result.Trace[0].Error)
	assert.Empty(t, result.Trace[0].Output)
}

func TestRun_UnexpectedRejectionFails(t *testing.T) {
	s := &Scenario{
		Name:  "unexpected",
		Steps: []Step{{Op: OpDecode, Input: "12a456", Expect: "123456"}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "unexpectedly rejected")
}

func TestRun_RoundTripAssertion(t *testing.T) {
	s := &Scenario{
		Name: "roundtrip",
		Steps: []Step{
			{Op: OpEncode, Input: "000000"},
			{Op: OpEncode, Input: "019283"},
			{Op: OpEncode, Input: "999999"},
		},
		Assertions: []Assertion{{Type: AssertRoundTrip}, {Type: AssertDistinctOutputs}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Passed, "failures: %v", result.Failures)
}

func TestRun_InvalidScenarioIsUnrunnable(t *testing.T) {
	s := &Scenario{Name: "bad", Steps: []Step{{Op: "shred", Input: "123456"}}}

	_, err := Run(s)
	require.Error(t, err)
}

func TestAssertionError_MessageIncludesTrace(t *testing.T) {
	err := &AssertionError{
		Type:     AssertRoundTrip,
		Expected: "decode(018932) == 123456",
		Actual:   "decode(018932) == 000000 (err=<nil>)",
		Trace:    []TraceEvent{{Seq: 1, Op: OpEncode, Input: "123456", Output: "018932"}},
	}
	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: roundtrip")
	assert.Contains(t, msg, "Expected:")
	assert.Contains(t, msg, "[1] encode 123456 -> 018932")
}
