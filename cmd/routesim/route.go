// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/dijkstra"
)

func newRouteCmd(gf *globalFlags) *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "route SRC DST",
		Short: "Print the least-cost path between two routers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.loadConfig()
			if err != nil {
				return err
			}
			if policy != "" {
				cfg.Engine.CostPolicy = policy
			}
			log, closeLog, err := gf.logger(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			e, err := engine(cfg, log)
			if err != nil {
				return err
			}
			if err := requireRouters(e.Snapshot(), args[0], args[1]); err != nil {
				return err
			}

			r, err := e.Route(args[0], args[1])
			if errors.Is(err, dijkstra.ErrNoPathFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No path found from %s to %s\n", args[0], args[1])
				return errNoRoute
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (cost %.2f, %d hops)\n", strings.Join(r.Path, " -> "), r.Cost, r.Hops())

			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "", "cost policy: latency or congestion")

	return cmd
}
