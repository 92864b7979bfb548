package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/knapsack"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "knapsack version "+version+"\n", out)
}

func TestRunCommandJSON(t *testing.T) {
	out, _, err := execute(t, "", "run", "--iterations", "15", "--runs", "3", "--seed", "11", "--parallel", "2", "--output", "json")
	require.NoError(t, err)

	var rep struct {
		Settings struct {
			Iterations  int   `json:"iterations"`
			Runs        int   `json:"runs"`
			Seed        int64 `json:"seed"`
			Parallelism int   `json:"parallelism"`
		} `json:"settings"`
		Results models.ExperimentResults `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 15, rep.Settings.Iterations)
	assert.Equal(t, 3, rep.Settings.Runs)
	assert.Equal(t, int64(11), rep.Settings.Seed)
	assert.Equal(t, 2, rep.Settings.Parallelism)
	for _, name := range rep.Results.Algorithms {
		runs := rep.Results.Get(name)
		require.Len(t, runs, 3)
		for _, r := range runs {
			assert.LessOrEqual(t, r.Fitness, 100)
		}
	}
}

func TestRunCommandLogsProgress(t *testing.T) {
	_, stderr, err := execute(t, "", "run", "--iterations", "3", "--runs", "2", "--seed", "5", "--output", "json")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(stderr, "run progress"))
	assert.Contains(t, stderr, "done=4 total=4")
}

func TestRunCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	instPath := filepath.Join(dir, "ks.txt")
	require.NoError(t, os.WriteFile(instPath, []byte("3\n1 6 2\n2 10 3\n3 12 4\n5\n"), 0o644))
	cfgPath := filepath.Join(dir, "experiment.yaml")
	cfgYAML := "instance: " + instPath + "\niterations: 5\nruns: 2\nseed: 3\noutput: text\ncolor: false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	out, _, err := execute(t, "", "--config", cfgPath, "run", "--runs", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Instance: "+instPath+", 3 items, capacity 5")
	assert.Contains(t, out, "Settings: 5 iterations, 4 runs, seed 3")
	assert.Equal(t, 2, strings.Count(out, "Run 4:"))
}

func TestRunCommandErrors(t *testing.T) {
	_, _, err := execute(t, "", "run", "--instance", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, knapsack.ErrInstanceNotFound)

	_, _, err = execute(t, "", "run", "--runs", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runs cannot be negative")

	_, _, err = execute(t, "", "run", "--output", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--log-format", "xml", "version")
	assert.Error(t, err)
}

func TestInteractiveCommand(t *testing.T) {
	out, _, err := execute(t, "\n7\n", "interactive", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the path to the input file")
	assert.Contains(t, out, "Enter the number of iterations")
	assert.Contains(t, out, "Instance: built-in, 5 items, capacity 10")
	assert.Contains(t, out, "Settings: 7 iterations, 10 runs")
	assert.Contains(t, out, "Run 10: best solution=")
}

func TestInteractiveCommandBadIterations(t *testing.T) {
	_, _, err := execute(t, "\nmany\n", "interactive")
	assert.ErrorIs(t, err, errInvalidIterationInput)
}
