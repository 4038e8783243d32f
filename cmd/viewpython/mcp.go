package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	viewpython "github.com/Pulkit12dhingra/view-python"
	"github.com/Pulkit12dhingra/view-python/internal/logging"
	mcpAdapter "github.com/Pulkit12dhingra/view-python/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Exposes graph building and notebook execution as Model Context Protocol tools
over stdin/stdout, for use by MCP-capable clients.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		// Stdout belongs to the MCP transport. Logs go to stderr.
		logger := logging.NewJSON(level)

		engine := viewpython.New(viewpython.WithLogger(logger))
		srv := mcpAdapter.NewServer(engine)

		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
