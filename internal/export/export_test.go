// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/internal/export"
)

func mustGrid(t *testing.T, order int, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.Generate(order, opts...)
	require.NoError(t, err)

	return g
}

func TestParseFormat(t *testing.T) {
	cases := map[string]export.Format{
		"csv":    export.FormatCSV,
		"JSON":   export.FormatJSON,
		" yaml ": export.FormatYAML,
		"yml":    export.FormatYAML,
		"table":  export.FormatTable,
	}
	for in, want := range cases {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := export.ParseFormat("xml")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mustGrid(t, 6), export.FormatCSV, export.Options{}))

	want := strings.Join([]string{
		"x,y,z,w",
		"1,0,0,0.1666666666666667",
		"-1,0,0,0.1666666666666667",
		"0,1,0,0.1666666666666667",
		"0,-1,0,0.1666666666666667",
		"0,0,1,0.1666666666666667",
		"0,0,-1,0.1666666666666667",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWrite_CSVSpherical(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mustGrid(t, 6), export.FormatCSV, export.Options{Spherical: true}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "x,y,z,w,azimuth,polar", lines[0])
	assert.Equal(t, "0,0,1,0.1666666666666667,0,0", lines[5])
}

func TestWrite_JSONRoundTrip(t *testing.T) {
	g := mustGrid(t, 110, grid.WithWeightScale(4*math.Pi))
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, g, export.FormatJSON, export.Options{}))

	var doc export.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 110, doc.Order)
	assert.Equal(t, 17, doc.Degree)
	assert.Equal(t, 4*math.Pi, doc.Scale)
	require.Len(t, doc.Points, 110)
	for i, p := range doc.Points {
		assert.Equal(t, g.X[i], p.X)
		assert.Equal(t, g.W[i], p.W)
		assert.Nil(t, p.Azimuth)
	}
	assert.NotContains(t, buf.String(), "azimuth")
}

func TestWrite_YAMLRoundTrip(t *testing.T) {
	g := mustGrid(t, 26)
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, g, export.FormatYAML, export.Options{Spherical: true}))

	var doc export.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, export.NewDocument(g, export.Options{Spherical: true}), doc)
	assert.Contains(t, buf.String(), "center: [0, 0, 0]")
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mustGrid(t, 14), export.FormatTable, export.Options{}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+14)
	assert.Equal(t, "# order 14, degree 5", lines[0])
	assert.Equal(t, []string{"i", "x", "y", "z", "w"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"13", "-0.5773502691896257", "-0.5773502691896257", "-0.5773502691896257", "0.075"}, strings.Fields(lines[15]))
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, export.Write(&buf, nil, export.FormatCSV, export.Options{}), export.ErrNilGrid)
	require.ErrorIs(t, export.Write(&buf, mustGrid(t, 6), export.Format("xml"), export.Options{}), export.ErrUnknownFormat)
}
