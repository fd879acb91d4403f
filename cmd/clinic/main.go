package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruclinic/clinic-scheduler/internal/config"
	"github.com/ruclinic/clinic-scheduler/internal/logging"
	"github.com/ruclinic/clinic-scheduler/internal/scheduler"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic appointment scheduler",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Read scheduling commands from stdin until Q",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logging.New("clinic-scheduler", cfg.Env, cfg.LogLevel)
			log.Info().
				Str("env", cfg.Env).
				Int("booking_window_months", cfg.BookingWindowMonths).
				Msg("scheduler starting")

			s := scheduler.New(cfg, os.Stdout, log)
			return s.Run(os.Stdin)
		},
	}
}
