package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// catalogPersister is the persistence collaborator of the pipeline. The
// pipeline owns the transient match/report structures for one run; storage
// belongs to the implementer.
type catalogPersister interface {
	EnsureSchema(ctx context.Context) error
	UpsertEntries(ctx context.Context, entries []CatalogEntry) error
	CustomEntries(ctx context.Context) ([]CatalogEntry, error)
}

// catalogIndexer pushes the final catalog into the search index.
type catalogIndexer interface {
	IndexCatalog(entries []CatalogEntry) error
}

// externalLoader supplies the third-party exercise database.
type externalLoader interface {
	Load(ctx context.Context, offline bool) ([]ExternalExercise, error)
}

// RunOptions are the per-invocation pipeline switches.
type RunOptions struct {
	// Offline skips the network fetch and reads only the local cache.
	Offline bool
	// DryRun stops after building the catalog and report: nothing is
	// persisted or indexed.
	DryRun bool
}

// Pipeline is the exercise-library reconciliation pipeline: a single-pass
// batch computation over the internal and external catalogs. It is
// idempotent; re-running against the same inputs yields the same matches
// and the same final catalog.
type Pipeline struct {
	cfg     *Config
	source  externalLoader
	store   catalogPersister
	indexer catalogIndexer
	log     zerolog.Logger
}

// NewPipeline wires a pipeline from its collaborators. store and indexer may
// be nil for dry runs.
func NewPipeline(cfg *Config, source externalLoader, store catalogPersister, indexer catalogIndexer, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, source: source, store: store, indexer: indexer, log: log}
}

// Run executes one full reconciliation.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*ReconcileReport, error) {
	external, err := p.source.Load(ctx, opts.Offline)
	if err != nil {
		return nil, err
	}
	if len(external) == 0 {
		return nil, fmt.Errorf("external database is empty: nothing to reconcile against")
	}
	p.log.Info().Int("internal", len(p.cfg.Catalog)).Int("external", len(external)).Msg("starting reconciliation")

	var custom []CatalogEntry
	if p.store != nil {
		if err := p.store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		custom, err = p.store.CustomEntries(ctx)
		if err != nil {
			return nil, err
		}
	}

	normalizer := NewNameNormalizer()
	scorer := NewMatchScorer(normalizer, p.cfg.Match)
	taxonomy := NewTaxonomyMapper(p.cfg.MuscleMap, p.cfg.EquipmentMap)
	matcher := NewMatcher(scorer, p.log)
	selector := NewImportSelector(taxonomy, p.cfg.AllowedCategories)
	merger := NewCatalogMerger(taxonomy, p.cfg.ImageBaseURL)

	outcome := matcher.Match(p.cfg.Catalog, external, p.cfg.ManualOverrides)
	imports := selector.SelectImports(external, outcome.Consumed)
	catalog, report := merger.BuildCatalog(outcome, imports, custom)
	report.Counts.External = len(external)

	p.log.Info().
		Int("matched", report.Counts.Matched).
		Int("unmatched", report.Counts.Unmatched).
		Int("imported", report.Counts.Imported).
		Int("custom", report.Counts.Custom).
		Int("catalog", report.Counts.Catalog).
		Msg("reconciliation computed")

	if err := p.writeReport(&report); err != nil {
		return nil, err
	}

	if opts.DryRun {
		p.log.Info().Msg("dry run: skipping persistence and indexing")
		return &report, nil
	}

	if p.store != nil {
		if err := p.store.UpsertEntries(ctx, catalog); err != nil {
			return nil, err
		}
	}
	if p.indexer != nil {
		if err := p.indexer.IndexCatalog(catalog); err != nil {
			return nil, err
		}
	}

	return &report, nil
}

// writeReport serializes the report for human review.
func (p *Pipeline) writeReport(report *ReconcileReport) error {
	if p.cfg.ReportPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.cfg.ReportPath), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(p.cfg.ReportPath, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	p.log.Info().Str("path", p.cfg.ReportPath).Msg("report written")
	return nil
}
