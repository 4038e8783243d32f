package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pulkit12dhingra/view-python/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run <notebook>",
	Short: "Execute a notebook in dependency order",
	Long: `Builds the dependency graph of the notebook's code cells, partitions it into
independent components, and executes each component in topological order.
Accepts a .ipynb file or a plain script with "# %%" cell markers.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		linear, _ := cmd.Flags().GetBool("linear")
		asJSON, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.Run(cli.RunOptions{
			Path:   args[0],
			Linear: linear,
			JSON:   asJSON,
			Debug:  debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("linear", false, "Execute cells top to bottom instead of in graph order")
	runCmd.Flags().Bool("json", false, "Print the run result as JSON")
}
