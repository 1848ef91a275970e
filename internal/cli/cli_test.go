package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/experiment"
	"github.com/katalvlaran/lvassign/matrix"
)

const scenarioJSON = `{"cost": [[4, 1, 3], [2, 0, 5], [3, 2, 2]]}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := New(&out, &errOut).Execute(context.Background(), args)
	return out.String(), errOut.String(), err
}

func TestSolve_AllSolversJSON(t *testing.T) {
	path := writeTemp(t, "m.json", scenarioJSON)
	out, _, err := execute(t, "solve", path, "--solver", "all", "-o", "json")
	require.NoError(t, err)

	var got []solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	for _, r := range got {
		if r.Solver == "greedy" {
			assert.Equal(t, 6.0, r.Cost)
			continue
		}
		assert.Equal(t, 5.0, r.Cost, r.Solver)
		assert.Equal(t, "[(0,1) (1,0) (2,2)]", formatAssignment(r.Assignment))
	}
}

func TestSolve_Table(t *testing.T) {
	path := writeTemp(t, "m.yaml", "cost:\n  - [4, 1, 3]\n  - [2, 0, 5]\n  - [3, 2, 2]\n")
	out, _, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3×3 cost matrix")
	assert.Contains(t, out, "hungarian")
	assert.Contains(t, out, "(0,1)")
	assert.NotContains(t, out, "greedy")
}

func TestSolve_Errors(t *testing.T) {
	good := writeTemp(t, "m.json", scenarioJSON)
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"solve", filepath.Join(t.TempDir(), "nope.json")}},
		{"unknown solver", []string{"solve", good, "--solver", "simplex"}},
		{"unknown output", []string{"solve", good, "-o", "xml"}},
		{"non-square", []string{"solve", writeTemp(t, "r.json", `{"cost": [[1, 2]]}`)}},
		{"no args", []string{"solve"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, errOut, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, errOut, iconError)
		})
	}
}

func TestDecodeMatrix(t *testing.T) {
	want := [][]float64{{1, 2}, {3, 4}}
	inputs := map[string]string{
		"json": `{"cost": [[1, 2], [3, 4]]}`,
		".yml": "cost: [[1, 2], [3, 4]]",
		"TOML": "cost = [[1.0, 2.0], [3.0, 4.0]]",
	}
	for ext, data := range inputs {
		m, err := decodeMatrix(ext, []byte(data))
		require.NoError(t, err, ext)
		assert.Equal(t, want, m.RawRows(), ext)
	}
}

func TestDecodeMatrix_Errors(t *testing.T) {
	_, err := decodeMatrix(".csv", []byte("1,2"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = decodeMatrix(".json", []byte(`{"costs": [[1]]}`))
	require.Error(t, err)

	_, err = decodeMatrix(".yaml", []byte("other: 1"))
	require.Error(t, err)

	_, err = decodeMatrix(".json", []byte(`{"cost": [[1, 2], [3]]}`))
	require.ErrorIs(t, err, matrix.ErrRagged)
}

func TestBench_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "run.yaml")
	csvPath := filepath.Join(dir, "run.csv")
	prom := filepath.Join(dir, "run.prom")

	out, _, err := execute(t, "bench",
		"--sizes", "2,3", "--trials", "1", "--workers", "1",
		"--report", report, "--csv", csvPath, "--metrics-file", prom)
	require.NoError(t, err)
	assert.Contains(t, out, "run ")
	assert.Contains(t, out, "bruteforce")

	for _, p := range []string{report, csvPath, prom} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
	}
	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "assignment_solves_total")
}

func TestBench_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ASSIGNBENCH_TRIALS", "0")
	_, _, err := execute(t, "bench", "--sizes", "2")
	require.ErrorIs(t, err, experiment.ErrBadConfig)
}

func TestBench_EnvSizes(t *testing.T) {
	t.Setenv("ASSIGNBENCH_SIZES", "2,x")
	_, _, err := execute(t, "bench", "--trials", "1")
	require.Error(t, err)
}

func TestBench_ConfigFile(t *testing.T) {
	cfg := writeTemp(t, "bench.yaml", "sizes: [2, 4]\ntrials: 1\nworkers: 1\nsolvers: [greedy]\n")
	out, _, err := execute(t, "bench", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "greedy")
	assert.NotContains(t, out, "hungarian")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-02")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "assignbench v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}

func TestSetVersion_KeepsDefaultsForEmpty(t *testing.T) {
	SetVersion("", "", "")
	assert.Equal(t, "dev", Version)
}

func TestBench_MaxValueTooLarge(t *testing.T) {
	_, _, err := execute(t, "bench", "--sizes", "2", "--trials", "1",
		"--kind", "integer", "--max-value", "9223372036854775807")
	require.ErrorIs(t, err, experiment.ErrBadConfig)
}
