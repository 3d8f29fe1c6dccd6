package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/manpower/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "manpower",
	Short: "Manpower - tank task tracking in the terminal",
	Long: `Manpower shows the tasks, hours and workers needed for each tank,
prints a task report and estimates the total time for a selected tank.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM
func Execute() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}
