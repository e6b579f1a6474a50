package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/core"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the full record of one wine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, catalog := loadCatalog(cmd.Context())
		wines := catalog.Wines()
		i := slices.IndexFunc(wines, func(w core.Wine) bool { return w.Name == args[0] })
		if i < 0 {
			fatal("Error showing wine", fmt.Errorf("%w: %q", core.ErrNotFound, args[0]))
		}
		w := wines[i]
		note := svc.Notes().Lookup(w.Name)

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(newListEntry(w, note)); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		r, err := newRenderer(cmd.Context(), svc, cfg.View.Layout)
		if err != nil {
			fatal("Invalid view", err)
		}
		fmt.Println(r.Detail(w, note, i+1, len(wines)))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
