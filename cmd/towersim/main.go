package main

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"tower-simulator/internal/config"
	"tower-simulator/internal/logging"
)

var (
	flagConfig   string
	flagLogLevel string
	flagTicks    int
	flagOut      string

	cfg *config.Config
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "towersim",
		Short: "Inspect, run and archive airport control tower saves",
		Long: `towersim works on tower save directories: four text files holding the tick
count, the aircraft, the queues and the terminals with their gates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(flagConfig); err != nil {
				return err
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			cobra.OnFinalize(func() { closer.Close() })
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn, error or off (overrides config)")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(packCmd())
	rootCmd.AddCommand(unpackCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
