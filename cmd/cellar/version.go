package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cellar"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cellar",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cellar version %s\n", strings.TrimSpace(cellar.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
