package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/internal/platform"
	"github.com/aretw0/cellar/pkg/core"
)

var (
	verbose    bool
	configPath string
	feedURI    string
	storageDir string
	ephemeral  bool
	logFormat  string

	// cfg is resolved once per invocation in PersistentPreRun.
	cfg platform.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cellar",
	Short: "Browse a personal wine collection published as a spreadsheet",
	Long: `Cellar fetches a wine collection from a published CSV sheet and lets you
search, filter, sort and annotate it from the terminal.
Personal notes and the theme preference are kept in a local storage directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := platform.LoadConfig(platform.LoadConfigInput{
			ConfigPath: configPath,
			DotEnv:     true,
			Overrides: platform.Config{
				Feed:    platform.FeedConfig{URI: feedURI},
				Storage: platform.StorageConfig{Dir: storageDir},
				Log:     platform.LogConfig{Format: logFormat},
			},
		})
		if err != nil {
			fatal("Error loading config", err)
		}
		cfg = loaded

		logger := platform.NewLogger(os.Stderr, cfg.Log, verbose)
		slog.SetDefault(logger)
		if cfg.Source != "" {
			slog.Debug("config loaded", "path", cfg.Source)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest .cellar.yaml)")
	rootCmd.PersistentFlags().StringVarP(&feedURI, "feed", "f", "", "Collection CSV: URL, path or glob")
	rootCmd.PersistentFlags().StringVar(&storageDir, "storage-dir", "", "Directory for notes and preferences")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep notes and preferences in memory only")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

// openService wires the service from the resolved config.
func openService(ctx context.Context) *core.Service {
	svc, err := platform.New(ctx, cfg,
		platform.WithLogger(slog.Default()),
		platform.WithEphemeral(ephemeral),
	)
	if err != nil {
		fatal("Error initializing cellar", err)
	}
	return svc
}

// loadCatalog opens the service and fetches the collection.
func loadCatalog(ctx context.Context) (*core.Service, *core.Catalog) {
	svc := openService(ctx)
	catalog, err := svc.Load(ctx)
	if err != nil {
		fatal("Failed to load collection", err)
	}
	return svc, catalog
}
