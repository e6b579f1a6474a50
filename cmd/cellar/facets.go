package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var facetsJSON bool

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the types, regions and grapes available as filters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, catalog := loadCatalog(cmd.Context())
		facets := catalog.Facets()

		if facetsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(facets); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		r, err := newRenderer(cmd.Context(), svc, cfg.View.Layout)
		if err != nil {
			fatal("Invalid view", err)
		}
		fmt.Println(r.Facets(facets))
	},
}

func init() {
	rootCmd.AddCommand(facetsCmd)
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "Output in JSON format")
}
