// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/internal/config"
)

func newVerifyCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check rule invariants",
		Long: `Checks one rule (or every rule with --all): finite values, points on the
sphere, weight sum, closure of every orbit under the 48 octahedral operations,
and exact integration of every even monomial up to the rule's degree.

The full-degree sweep of the largest rules takes a few seconds each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders := grid.Orders()
			if !all {
				order, err := a.cfg.ResolveOrder()
				if err != nil {
					return err
				}
				orders = []int{order}
			}
			return a.runVerify(cmd.OutOrStdout(), orders)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&all, "all", false, "verify every supported rule")
	f.Int(config.KeyOrder, config.DefaultOrder, "number of points of the rule")
	f.Int(config.KeyDegree, 0, "minimum degree of exactness (overrides --order)")
	f.Float64(config.KeyRadius, config.DefaultRadius, "sphere radius")
	f.Bool(config.KeySurface, false, "scale weights by 4π")
	f.Float64(config.KeyTolerance, config.DefaultTolerance, "absolute tolerance")

	return cmd
}

func (a *app) runVerify(stdout io.Writer, orders []int) error {
	var errs []error
	for _, order := range orders {
		start := time.Now()
		err := a.verifyOrder(order)
		status := "ok"
		if err != nil {
			status = "FAIL: " + err.Error()
			errs = append(errs, err)
			a.logger.Error("verification failed", zap.Int("order", order), zap.Error(err))
		} else {
			a.logger.Debug("verified", zap.Int("order", order), zap.Duration("elapsed", time.Since(start)))
		}
		fmt.Fprintf(stdout, "%5d  %s\n", order, status)
	}

	return errors.Join(errs...)
}

func (a *app) verifyOrder(order int) error {
	tol := a.cfg.Tolerance
	g, err := grid.Generate(order, a.cfg.GridOptions()...)
	if err != nil {
		return err
	}
	if err := g.Validate(tol); err != nil {
		return err
	}
	if err := grid.CheckSymmetry(order, tol); err != nil {
		return err
	}

	return grid.CheckExactness(g, g.Degree, tol)
}
