package main

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"tower-simulator/internal/game/savefile"
	"tower-simulator/internal/game/simulation"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Check that a save directory decodes cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := savefile.Load(args[0], cfg.Files)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, tick %d, %d aircraft, %d terminals, %d gates\n",
				args[0], sim.Ticks, len(sim.Aircraft), len(sim.Terminals), gateCount(sim))
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dir>",
		Short: "Print the terminals, queues and aircraft of a save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := savefile.Load(args[0], cfg.Files)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTower(sim))
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <dir>",
		Short: "Advance a save by a number of ticks and write it back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagTicks < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
			}
			sim, err := savefile.Load(args[0], cfg.Files)
			if err != nil {
				return err
			}

			start := sim.Ticks
			for range flagTicks {
				sim.Tick()
			}
			log.Infof("ran ticks %d to %d: %d landings, %d takeoffs", start, sim.Ticks, sim.Landings, sim.Takeoffs)

			out := flagOut
			if out == "" {
				out = args[0]
			}
			if err := savefile.Save(out, cfg.Files, sim); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tick %d: %d landings, %d takeoffs, saved to %s\n",
				sim.Ticks, sim.Landings, sim.Takeoffs, out)
			return nil
		},
	}
	cmd.Flags().IntVar(&flagTicks, "ticks", 1, "number of ticks to run")
	cmd.Flags().StringVar(&flagOut, "out", "", "directory to save to (default: the input directory)")
	return cmd
}

func packCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <dir> <archive>",
		Short: "Validate a save directory and bundle it into one compressed file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := savefile.Pack(args[0], cfg.Files, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "packed %s into %s\n", args[0], args[1])
			return nil
		},
	}
}

func unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <archive> <dir>",
		Short: "Validate an archive and write its save files into a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := savefile.Unpack(args[0], args[1], cfg.Files); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unpacked %s into %s\n", args[0], args[1])
			return nil
		},
	}
}

func gateCount(sim *simulation.Simulation) int {
	n := 0
	for _, t := range sim.Terminals {
		n += len(t.Gates())
	}
	return n
}
