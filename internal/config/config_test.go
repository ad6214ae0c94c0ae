// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := config.New("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Order:     config.DefaultOrder,
		Format:    config.DefaultFormat,
		Radius:    config.DefaultRadius,
		Tolerance: config.DefaultTolerance,
	}, c)

	order, err := c.ResolveOrder()
	require.NoError(t, err)
	assert.Equal(t, 110, order)
	assert.Empty(t, c.GridOptions())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LEBEDEV_ORDER", "302")
	t.Setenv("LEBEDEV_FORMAT", "csv")
	t.Setenv("LEBEDEV_SURFACE", "true")

	v, err := config.New("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 302, c.Order)
	assert.Equal(t, "csv", c.Format)
	assert.True(t, c.Surface)
	require.Len(t, c.GridOptions(), 1)

	g, err := grid.Generate(c.Order, c.GridOptions()...)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi, g.WeightSum(), 1e-12)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lebedev.yaml")
	body := "degree: 40\nformat: json\nradius: 2.5\nspherical: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v, err := config.New(path)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Degree)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 2.5, c.Radius)
	assert.True(t, c.Spherical)

	order, err := c.ResolveOrder()
	require.NoError(t, err)
	assert.Equal(t, 590, order)
	assert.Len(t, c.GridOptions(), 1)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{Order: 50, Format: "csv", Radius: 1, Tolerance: 1e-12}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"UnsupportedOrder", func(c *config.Config) { c.Order = 7 }},
		{"NegativeDegree", func(c *config.Config) { c.Degree = -1 }},
		{"DegreeTooHigh", func(c *config.Config) { c.Degree = 132 }},
		{"Format", func(c *config.Config) { c.Format = "xml" }},
		{"ZeroRadius", func(c *config.Config) { c.Radius = 0 }},
		{"NaNRadius", func(c *config.Config) { c.Radius = math.NaN() }},
		{"InfRadius", func(c *config.Config) { c.Radius = math.Inf(1) }},
		{"Tolerance", func(c *config.Config) { c.Tolerance = 0 }},
		{"InfTolerance", func(c *config.Config) { c.Tolerance = math.Inf(1) }},
		{"NaNTolerance", func(c *config.Config) { c.Tolerance = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}

	// A degree overrides an unsupported order.
	c := valid
	c.Order, c.Degree = 7, 9
	require.NoError(t, c.Validate())
	order, err := c.ResolveOrder()
	require.NoError(t, err)
	assert.Equal(t, 38, order)
}
