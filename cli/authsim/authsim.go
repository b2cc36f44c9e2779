package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/authsim/internal/cli"
)

var (
	configPath string
	logLevel   string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authsim",
		Short: "A single-session authorization simulator",
		Long: `authsim replays a scripted sequence of administrative and
file-access commands against an in-memory model of users, groups,
files and permission triads, producing an audit trail of accepted and
rejected operations.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: built-in defaults)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "process log level (error, warn, info, debug)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.LogLevel = &logLevel

	// Add subcommands
	cmd.AddCommand(
		cli.NewRunCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
