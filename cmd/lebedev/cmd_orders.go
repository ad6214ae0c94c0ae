// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lebedev/grid"
)

func newOrdersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List the supported rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOrders(cmd.OutOrStdout())
		},
	}
}

func (a *app) runOrders(stdout io.Writer) error {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "order\tdegree\torbits\t")
	for _, order := range grid.Orders() {
		deg, err := grid.Degree(order)
		if err != nil {
			return err
		}
		orbits, err := grid.Orbits(order)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t\n", order, deg, len(orbits))
	}

	return tw.Flush()
}
