// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/bfs"
)

func newReachCmd(gf *globalFlags) *cobra.Command {
	var (
		maxHops       int
		includeFailed bool
	)

	cmd := &cobra.Command{
		Use:   "reach SRC",
		Short: "List routers reachable from SRC with their hop counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.loadConfig()
			if err != nil {
				return err
			}
			topo, err := cfg.BuildTopology()
			if err != nil {
				return err
			}

			opts := []bfs.Option{bfs.WithMaxDepth(maxHops)}
			if includeFailed {
				opts = append(opts, bfs.WithIncludeFailed())
			}
			res, err := bfs.BFS(topo.Snapshot(), args[0], opts...)
			if err != nil {
				return err
			}
			for _, id := range res.Order {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", id, res.Depth[id])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "stop after this many hops (0 = unlimited)")
	cmd.Flags().BoolVar(&includeFailed, "include-failed", false, "also cross failed links")

	return cmd
}
