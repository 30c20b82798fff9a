package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand - the tictactoe command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "N×N tic-tac-toe engine",
		Long:          "Hosts tic-tac-toe games of any board size over HTTP and WebSocket, or plays one locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewPlayCommand())

	return cmd
}
