package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	statsFlags queryFlags
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many wines match and their average rating",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := statsFlags.query()
		if err != nil {
			fatal("Invalid query", err)
		}
		svc, catalog := loadCatalog(cmd.Context())
		res := catalog.Apply(q)

		if statsJSON {
			out := map[string]any{
				"shown":         res.Shown(),
				"total":         res.Total,
				"activeFilters": res.ActiveFilters,
			}
			if res.HasAverage {
				out["averageRating"] = res.AverageRating
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		r, err := newRenderer(cmd.Context(), svc, cfg.View.Layout)
		if err != nil {
			fatal("Invalid view", err)
		}
		fmt.Println(r.Stats(res))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsFlags.register(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
}
