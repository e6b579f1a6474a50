package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/export"
)

var (
	exportFlags queryFlags
	exportOut   string
	exportDir   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the matching wines with their notes to CSV",
	Long: `Export writes the wines matching the given filters, in their sorted order,
to wine-collection-YYYY-MM-DD.csv in --out-dir. Use --out - to write to stdout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := exportFlags.query()
		if err != nil {
			fatal("Invalid query", err)
		}
		svc, catalog := loadCatalog(cmd.Context())
		res := catalog.Apply(q)

		if exportOut == "-" {
			if err := export.Write(os.Stdout, res.Wines, svc.Notes()); err != nil {
				fatal("Error exporting", err)
			}
			return
		}

		path, err := export.ToFile(exportDir, time.Now(), res.Wines, svc.Notes())
		if err != nil {
			fatal("Error exporting", err)
		}
		fmt.Printf("Exported %d wines to %s\n", len(res.Wines), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to stdout with -")
	exportCmd.Flags().StringVar(&exportDir, "out-dir", ".", "Target directory")
}
