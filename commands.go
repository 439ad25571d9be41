package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// Global flags.
var (
	cfgFile string
	debug   bool
	offline bool
	dryRun  bool
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "talos-sync",
		Short:         "Reconcile the Talos exercise library against the open exercise database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newReconcileCommand())
	root.AddCommand(newSeedSubsCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newReconcileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run the full reconciliation pipeline",
		Long: `Fetches the external exercise database (or reads the local cache),
matches it against the curated catalog, selects importable entries, and
writes the merged catalog to Postgres and Meilisearch along with a
reviewable JSON report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			source := NewExternalSource(cfg.ExternalURL, cfg.CachePath, cfg.FetchTimeout, log)

			var store catalogPersister
			var indexer catalogIndexer
			if !dryRun {
				catalogStore, err := OpenCatalogStore(ctx, cfg.DatabaseURL, log)
				if err != nil {
					return err
				}
				defer catalogStore.Close()
				store = catalogStore
				indexer = NewSearchIndexer(cfg.MeiliURL, cfg.MeiliAPIKey, log)
			}

			pipeline := NewPipeline(cfg, source, store, indexer, log)
			report, err := pipeline.Run(ctx, RunOptions{Offline: offline, DryRun: dryRun})
			if err != nil {
				return err
			}

			fmt.Printf("Reconciliation complete: %d matched, %d unmatched, %d imported, %d catalog entries\n",
				report.Counts.Matched, report.Counts.Unmatched, report.Counts.Imported, report.Counts.Catalog)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "use the cached external database, skip the network fetch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute the catalog and report without persisting or indexing")
	return cmd
}

func newSeedSubsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-subs",
		Short: "Seed the ranked exercise-substitution table",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := OpenCatalogStore(ctx, cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := store.SeedSubstitutions(ctx, cfg.Substitutions); err != nil {
				return err
			}
			fmt.Printf("Seeded %d substitution edges\n", len(cfg.Substitutions))
			return nil
		},
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the exercise search endpoint over the Meilisearch index",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			srv := &searchServer{
				indexer: NewSearchIndexer(cfg.MeiliURL, cfg.MeiliAPIKey, log),
				log:     log,
			}

			log.Info().Str("addr", cfg.ListenAddr).Msg("search server listening")
			return http.ListenAndServe(cfg.ListenAddr, srv.Handler())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the talos-sync version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("talos-sync %s\n", Version)
		},
	}
}

// newLogger builds the CLI logger: console output, debug level behind the
// --debug flag.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
