// Package cli wires the paperdesk commands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootConfig carries flags shared by every subcommand.
type RootConfig struct {
	ConfigPath string
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "paperdesk",
		Short:         "Paperdesk — a simulated trading-desk state core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; it only exists to hold local overrides.
		_ = godotenv.Load()
		if rc.ConfigPath == "" {
			rc.ConfigPath = os.Getenv("PAPERDESK_CONFIG")
		}
		return nil
	}

	cmd.AddCommand(
		newRunCmd(rc),
		newConfigCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("paperdesk (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
