package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// The scenario files under testdata/scenarios are the conformance
// suite; each has a pinned golden trace.
func TestScenarios_Golden(t *testing.T) {
	for _, name := range []string{"basic_roundtrip", "leading_zeros", "invalid_input"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			require.NoError(t, RunWithGolden(t, scenario))

			result, err := Run(scenario)
			require.NoError(t, err)
			require.True(t, result.Passed, "failures: %v", result.Failures)
		})
	}
}
