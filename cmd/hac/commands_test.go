package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/decay_small.csv"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFeaturesCommand(t *testing.T) {
	out, err := runCLI(t, "features", fixture)
	require.NoError(t, err)

	assert.Contains(t, out, "Beta/North")
	assert.Regexp(t, `Zero\s+undefined\s+undefined\s+false`, out)
	assert.Regexp(t, `Slow\s+1\s+undefined\s+false`, out)
	assert.Regexp(t, `Delta\s+6\s+2\s+true`, out)
	assert.Contains(t, out, "usable: 5 of 7")
	assert.Contains(t, out, "x: mean=7.00 std=8.22 min=1 max=21")
}

func TestClusterCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "cluster", fixture, "--verify", "--clusters", "2")
	require.NoError(t, err)

	var rep clusterReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err)
	assert.Equal(t, fixture, rep.Source)
	assert.Equal(t, []string{"Alpha", "Beta/North", "Gamma", "Delta", "Epsilon"}, rep.Leaves)
	assert.Equal(t, []string{"Zero", "Slow"}, rep.Dropped)
	assert.Equal(t, [][4]float64{{0, 1, 1, 2}, {2, 3, 2, 2}, {5, 6, 5, 4}, {4, 7, 15, 5}}, rep.Linkage)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, rep.Flat)
}

func TestClusterCommand_CSV(t *testing.T) {
	out, err := runCLI(t, "cluster", fixture, "--format", "csv", "--cut", "2")
	require.NoError(t, err)
	assert.Equal(t, "left,right,distance,size\n0,1,1,2\n2,3,2,2\n5,6,5,4\n4,7,15,5\n", out)
}

func TestClusterCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "hac.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: csv\ncross_check: true\nlog_level: error\n"), 0o600))

	out, err := runCLI(t, "--config", cfgPath, "cluster", fixture)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "left,right,distance,size\n"))

	// A flag overrides the file.
	out, err = runCLI(t, "--config", cfgPath, "cluster", fixture, "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))
}

func TestClusterCommand_Errors(t *testing.T) {
	_, err := runCLI(t, "cluster", fixture, "--cut", "1", "--clusters", "2")
	assert.Error(t, err)

	_, err = runCLI(t, "cluster", fixture, "--format", "xml")
	assert.Error(t, err)

	_, err = runCLI(t, "cluster", "missing.csv")
	assert.Error(t, err)

	_, err = runCLI(t, "cluster")
	assert.Error(t, err)

	_, err = runCLI(t, "--log-level", "chatty", "features", fixture)
	assert.Error(t, err)
}
