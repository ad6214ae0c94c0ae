// SPDX-License-Identifier: MIT

// Command lebedev prints and verifies Lebedev-Laikov angular quadrature rules.
//
//	lebedev orders                        list the rule catalogue
//	lebedev grid --order 302 --format csv emit one rule
//	lebedev grid --degree 41 --surface    smallest rule exact through degree 41, weights summing to 4π
//	lebedev verify --all                  check every rule
//
// Settings may also come from a YAML file (--config) or LEBEDEV_* variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lebedev/internal/config"
)

// app carries state shared by the commands of one invocation.
type app struct {
	configFile string
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lebedev",
		Short: "Lebedev-Laikov quadrature rules on the unit sphere",
		Long: `lebedev emits the 32 tabulated Lebedev-Laikov angular quadrature rules
(6 to 5810 points, exact through degree 3 to 131) and verifies their invariants:
unit-norm points, unit weight sum, octahedral symmetry and polynomial exactness.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file")
	root.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "enable debug logging")

	root.AddCommand(newGridCmd(a), newOrdersCmd(a), newVerifyCmd(a))

	return root
}

// setup resolves configuration for cmd and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named(cmd.Name())
	a.logger.Debug("configuration resolved",
		zap.String("config_file", a.configFile),
		zap.Any("config", cfg),
	)

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
