// SPDX-License-Identifier: MIT

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

	"github.com/katalvlaran/lebedev/internal/config"
	"github.com/katalvlaran/lebedev/internal/export"
)

// run executes the root command with args and returns standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestGridCmd_CSV(t *testing.T) {
	out, err := run(t, "grid", "--order", "6", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "x,y,z,w", lines[0])
	assert.Equal(t, "1,0,0,0.1666666666666667", lines[1])
}

func TestGridCmd_DegreeJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.json")
	out, err := run(t, "grid", "--degree", "20", "--surface", "--spherical", "-f", "json", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc export.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, 170, doc.Order)
	assert.Equal(t, 21, doc.Degree)
	require.Len(t, doc.Points, 170)
	require.NotNil(t, doc.Points[0].Azimuth)

	sum := 0.0
	for _, p := range doc.Points {
		sum += p.W
	}
	assert.InDelta(t, 4*3.141592653589793, sum, 1e-12)
}

func TestGridCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lebedev.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: 14\nformat: yaml\n"), 0o600))

	out, err := run(t, "grid", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "order: 14")
	assert.Contains(t, out, "degree: 5")

	// Flags win over the file.
	out, err = run(t, "grid", "--config", path, "--order", "26")
	require.NoError(t, err)
	assert.Contains(t, out, "order: 26")
}

func TestGridCmd_Environment(t *testing.T) {
	t.Setenv(config.EnvPrefix+"_ORDER", "38")
	t.Setenv(config.EnvPrefix+"_FORMAT", "table")
	out, err := run(t, "grid")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# order 38, degree 9\n"), out)
}

func TestGridCmd_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"grid", "--order", "7"},
		{"grid", "--degree", "200"},
		{"grid", "--format", "xml"},
		{"grid", "--radius", "-1"},
		{"grid", "extra"},
		{"grid", "-o", filepath.Join(t.TempDir(), "missing", "rule.csv")},
		{"verify", "--order", "26", "--tolerance", "+Inf"},
	} {
		_, err := run(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestOrdersCmd(t *testing.T) {
	out, err := run(t, "orders")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+32)
	assert.Equal(t, []string{"order", "degree", "orbits"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"6", "3", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"3470", "101", "90"}, strings.Fields(lines[27]))
	assert.Equal(t, []string{"5810", "131", "144"}, strings.Fields(lines[32]))
}

func TestVerifyCmd(t *testing.T) {
	out, err := run(t, "verify", "--order", "266")
	require.NoError(t, err)
	assert.Equal(t, "  266  ok\n", out)

	out, err = run(t, "verify", "--degree", "30", "--radius", "3", "--surface", "--tolerance", "1e-11")
	require.NoError(t, err)
	assert.Equal(t, "  350  ok\n", out)
}

func TestVerifyCmd_All(t *testing.T) {
	if testing.Short() {
		t.Skip("full-degree verification of every rule")
	}
	out, err := run(t, "verify", "--all")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 32)
	for _, l := range lines {
		assert.True(t, strings.HasSuffix(l, "  ok"), l)
	}
}
