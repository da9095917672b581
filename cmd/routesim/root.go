// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/config"
	"github.com/katalvlaran/routesim/internal/logging"
	"github.com/katalvlaran/routesim/topology"
	"github.com/katalvlaran/routesim/transit"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "routesim",
		Short: "Packet routing simulator",
		Long: `routesim computes least-cost routes over a simulated router network
and steps packets along them until delivery.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&gf.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&gf.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newRunCmd(gf), newRouteCmd(gf), newReachCmd(gf), newGenerateCmd(gf))

	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the file named by --config, or defaults.
func (gf *globalFlags) loadConfig() (config.Config, error) {
	if gf.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(gf.configPath)
}

// logger builds the command logger from the config and --verbose.
func (gf *globalFlags) logger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if gf.verbose {
		level = slog.LevelDebug
	}

	return logging.New(logging.Options{
		Level:    level,
		Console:  cmd.ErrOrStderr(),
		NoColor:  gf.noColor,
		FilePath: cfg.Log.Path,
	})
}

// engine builds the store and engine described by cfg.
func engine(cfg config.Config, log *slog.Logger) (*transit.Engine, error) {
	topo, err := cfg.BuildTopology()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, transit.WithLogger(log))

	return transit.NewEngine(topo, opts...), nil
}

// requireRouters reports the first id missing from snap.
func requireRouters(snap *topology.Snapshot, ids ...string) error {
	for _, id := range ids {
		if !snap.HasRouter(id) {
			return fmt.Errorf("router %q: %w", id, topology.ErrUnknownRouter)
		}
	}

	return nil
}
