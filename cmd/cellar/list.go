package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/view"
)

var (
	listFlags queryFlags
	listJSON  bool
	listView  string
)

// listEntry is the JSON shape of one listed wine.
type listEntry struct {
	core.Wine
	CardImage string `json:"cardImage"`
	Note      string `json:"note,omitempty"`
}

func newListEntry(w core.Wine, note string) listEntry {
	return listEntry{Wine: w, CardImage: view.CardImage(w), Note: note}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the wines matching the given filters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := listFlags.query()
		if err != nil {
			fatal("Invalid query", err)
		}
		svc, catalog := loadCatalog(cmd.Context())
		res := catalog.Apply(q)

		if listJSON {
			entries := make([]listEntry, 0, len(res.Wines))
			for _, w := range res.Wines {
				entries = append(entries, newListEntry(w, svc.Notes().Lookup(w.Name)))
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		layout := cfg.View.Layout
		if listView != "" {
			layout = listView
		}
		r, err := newRenderer(cmd.Context(), svc, layout)
		if err != nil {
			fatal("Invalid view", err)
		}
		fmt.Println(r.Stats(res))
		fmt.Println(r.Cards(res.Wines))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listFlags.register(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listView, "view", "", "Layout: grid or list")
}
