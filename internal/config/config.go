// SPDX-License-Identifier: MIT

// Package config resolves lebedev command settings from defaults, an optional
// YAML file, LEBEDEV_* environment variables and command flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/internal/export"
)

// Keys shared by flags, environment and config file.
const (
	KeyOrder     = "order"
	KeyDegree    = "degree"
	KeyFormat    = "format"
	KeyOutput    = "output"
	KeyRadius    = "radius"
	KeySurface   = "surface"
	KeySpherical = "spherical"
	KeyTolerance = "tolerance"
	KeyVerbose   = "verbose"

	// EnvPrefix prefixes environment keys: LEBEDEV_ORDER, LEBEDEV_FORMAT, ...
	EnvPrefix = "LEBEDEV"
)

// Defaults applied before any other source.
const (
	DefaultOrder     = 110
	DefaultFormat    = "table"
	DefaultRadius    = 1.0
	DefaultTolerance = 1e-12
)

// ErrInvalid marks a configuration that failed Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved command configuration.
type Config struct {
	// Order selects the rule by point count. Ignored when Degree > 0.
	Order int `mapstructure:"order" yaml:"order"`
	// Degree selects the smallest rule exact through this degree.
	Degree int `mapstructure:"degree" yaml:"degree"`
	// Format is one of csv, json, yaml, table.
	Format string `mapstructure:"format" yaml:"format"`
	// Output is a file path; empty means standard output.
	Output string `mapstructure:"output" yaml:"output"`
	// Radius of the sphere the points are placed on.
	Radius float64 `mapstructure:"radius" yaml:"radius"`
	// Surface scales weights by 4π so they sum to the unit-sphere area.
	Surface bool `mapstructure:"surface" yaml:"surface"`
	// Spherical adds azimuth and polar angles to the output.
	Spherical bool `mapstructure:"spherical" yaml:"spherical"`
	// Tolerance used by verify.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// New returns a viper instance with defaults and environment binding, reading
// file when it is non-empty.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyOrder, DefaultOrder)
	v.SetDefault(KeyDegree, 0)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyRadius, DefaultRadius)
	v.SetDefault(KeySurface, false)
	v.SetDefault(KeySpherical, false)
	v.SetDefault(KeyTolerance, DefaultTolerance)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Degree < 0 || c.Degree > grid.MaxDegree {
		return fmt.Errorf("%w: degree must be between 0 and %d, got %d", ErrInvalid, grid.MaxDegree, c.Degree)
	}
	if c.Degree == 0 && !grid.Supported(c.Order) {
		return fmt.Errorf("%w: order %d is not one of %v", ErrInvalid, c.Order, grid.Orders())
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 1) {
		return fmt.Errorf("%w: radius must be finite and > 0, got %g", ErrInvalid, c.Radius)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 1) {
		return fmt.Errorf("%w: tolerance must be finite and > 0, got %g", ErrInvalid, c.Tolerance)
	}

	return nil
}

// ResolveOrder returns the rule order the configuration selects.
func (c *Config) ResolveOrder() (int, error) {
	if c.Degree > 0 {
		return grid.ForDegree(c.Degree)
	}

	return c.Order, nil
}

// GridOptions translates placement settings into grid options.
func (c *Config) GridOptions() []grid.Option {
	var opts []grid.Option
	if c.Radius != 1 {
		opts = append(opts, grid.WithRadius(c.Radius))
	}
	if c.Surface {
		opts = append(opts, grid.WithWeightScale(4*math.Pi))
	}

	return opts
}
