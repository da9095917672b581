// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routesim/config"
)

func newGenerateCmd(gf *globalFlags) *cobra.Command {
	var (
		routers int
		seed    int64
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random topology as a routesim config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.loadConfig()
			if err != nil {
				return err
			}
			cfg.Topology = config.TopologyConfig{}
			cfg.Random = &config.RandomConfig{Routers: routers, Seed: seed}
			if err := cfg.Validate(); err != nil {
				return err
			}
			topo, err := cfg.BuildTopology()
			if err != nil {
				return err
			}

			cfg.Random = nil
			cfg.Topology = config.FromSnapshot(topo.Snapshot())
			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(outPath, data, 0o600)
		},
	}
	cmd.Flags().IntVarP(&routers, "routers", "n", 8, "number of routers")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}
