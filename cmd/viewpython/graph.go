package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pulkit12dhingra/view-python/internal/cli"
)

var graphCmd = &cobra.Command{
	Use:   "graph <notebook>",
	Short: "Print the dependency graph of a notebook",
	Long: `Analyzes the notebook's code cells and prints the inferred dependency graph,
either as JSON or as a Mermaid flowchart.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.Graph(cli.GraphOptions{
			Path:   args[0],
			Format: format,
			Debug:  debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "json", "Output format: json or mermaid")
}
