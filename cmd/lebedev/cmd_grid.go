// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/internal/config"
	"github.com/katalvlaran/lebedev/internal/export"
)

func newGridCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Emit one quadrature rule",
		Long: `Emits the points and weights of one rule. Select it by point count with
--order, or by polynomial degree with --degree (the smallest exact rule wins).

Example:
  lebedev grid --order 26 --format csv
  lebedev grid --degree 41 --surface --spherical --format json -o rule.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGrid(cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Int(config.KeyOrder, config.DefaultOrder, "number of points of the rule")
	f.Int(config.KeyDegree, 0, "minimum degree of exactness (overrides --order)")
	f.StringP(config.KeyFormat, "f", config.DefaultFormat, "output format: csv, json, yaml, table")
	f.StringP(config.KeyOutput, "o", "", "output file (default stdout)")
	f.Float64(config.KeyRadius, config.DefaultRadius, "sphere radius")
	f.Bool(config.KeySurface, false, "scale weights by 4π")
	f.Bool(config.KeySpherical, false, "include azimuth and polar angles")

	return cmd
}

func (a *app) runGrid(stdout io.Writer) (err error) {
	order, err := a.cfg.ResolveOrder()
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	g, err := grid.Generate(order, a.cfg.GridOptions()...)
	if err != nil {
		return err
	}
	a.logger.Info("grid generated",
		zap.Int("order", g.Order),
		zap.Int("degree", g.Degree),
		zap.Float64("radius", g.Radius),
		zap.Float64("scale", g.Scale),
	)

	out := stdout
	if a.cfg.Output != "" {
		f, cerr := os.Create(a.cfg.Output)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}
	if err := export.Write(out, g, format, export.Options{Spherical: a.cfg.Spherical}); err != nil {
		return err
	}
	if a.cfg.Output != "" {
		a.logger.Info("grid written", zap.String("path", a.cfg.Output), zap.String("format", string(format)))
	}

	return nil
}
