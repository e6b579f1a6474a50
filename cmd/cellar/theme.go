package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/core"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the display theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		svc := openService(ctx)
		current := svc.Theme(ctx)
		if len(args) == 0 {
			fmt.Println(current)
			return
		}

		next := current.Toggle()
		if strings.ToLower(args[0]) != "toggle" {
			t, err := core.ParseTheme(args[0])
			if err != nil {
				fatal("Invalid theme", err)
			}
			next = t
		}
		svc.SetTheme(ctx, next)
		fmt.Printf("Theme set to %s\n", next)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
