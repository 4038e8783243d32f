package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pulkit12dhingra/view-python/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "viewpython",
	Short: "viewpython turns notebook cells into a dependency-ordered workflow",
	Long: `viewpython infers data dependencies between notebook cells by static name
analysis, partitions them into independent components, and executes each
component in dependency order against a private shared namespace.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
