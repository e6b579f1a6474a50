package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusSkipLoad bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of the service and its storage as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		svc := openService(ctx)
		if !statusSkipLoad {
			if _, err := svc.Load(ctx); err != nil {
				slog.Debug("status: load failed", "error", err)
			}
		}

		out := map[string]any{
			"config":  cfg,
			"service": svc.State(),
		}
		if intro, ok := svc.Storage().(introspection.Introspectable); ok {
			out["storage"] = intro.State()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusSkipLoad, "no-load", false, "Do not fetch the collection")
}
