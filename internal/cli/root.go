package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scorekeeper",
		Short: "CLI tool for the scorekeeper API",
		Long: `scorekeeper is a CLI tool for keeping board game scores through the
scorekeeper JSON API.

It supports Everdell, Flip 7 and Phase 10 games.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != FormatText && cfg.Output != FormatJSON {
				return fmt.Errorf("unknown output format %q", cfg.Output)
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCOREKEEPER_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newEverdellCmd())
	rootCmd.AddCommand(newFlip7Cmd())
	rootCmd.AddCommand(newPhase10Cmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
