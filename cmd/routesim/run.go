// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/transit"
)

var errNoRoute = errors.New("no route")

// logWindow is how many trailing log entries run prints at the end.
const logWindow = 10

func newRunCmd(gf *globalFlags) *cobra.Command {
	var (
		count, size int
		randomN     int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "run SRC DST",
		Short: "Send a packet and step it to delivery",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.loadConfig()
			if err != nil {
				return err
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
			if randomN > 0 {
				if err := e.GenerateRandomNetwork(randomN, builder.WithSeed(seed)); err != nil {
					return err
				}
			}
			if err := requireRouters(e.Snapshot(), args[0], args[1]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ok, err := e.SimulatePacket(args[0], args[1], transit.WithCount(count), transit.WithSize(size))
			if err != nil {
				return err
			}
			if !ok {
				for _, line := range e.Tail(logWindow) {
					fmt.Fprintln(out, line)
				}
				return errNoRoute
			}

			tick, err := cfg.TickDuration()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = transit.Drive(ctx, e, tick, func(s transit.State) {
				if seg, ok := transit.Locate(s); ok {
					fmt.Fprintf(out, "%s -> %s %3.0f%%  ttl=%.1f\n", seg.From, seg.To, seg.Progress*100, s.Stats.TTL)
				}
			})
			if err != nil {
				return err
			}

			for _, line := range e.Tail(logWindow) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", transit.DefaultCount, "packets in the batch")
	cmd.Flags().IntVar(&size, "size", transit.DefaultSizeKB, "packet size in KB")
	cmd.Flags().IntVar(&randomN, "random", 0, "replace the topology with a random network of this many routers")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for --random")

	return cmd
}
