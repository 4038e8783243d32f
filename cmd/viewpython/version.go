package main

import (
	"fmt"
	"strings"

	viewpython "github.com/Pulkit12dhingra/view-python"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of viewpython",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("viewpython version %s\n", strings.TrimSpace(viewpython.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
