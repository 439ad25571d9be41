package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// CatalogStore persists the reconciled catalog and the substitution table in
// Postgres. Writes are upserts keyed by lower(name) so repeated runs never
// duplicate entries.
type CatalogStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenCatalogStore connects to Postgres and verifies the connection.
func OpenCatalogStore(ctx context.Context, databaseURL string, log zerolog.Logger) (*CatalogStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &CatalogStore{db: db, log: log}, nil
}

// Close releases the underlying connection pool.
func (s *CatalogStore) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the catalog tables and indexes if missing.
func (s *CatalogStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS exercises (
			id                SERIAL PRIMARY KEY,
			name              TEXT NOT NULL,
			muscle_group      TEXT NOT NULL,
			equipment_class   TEXT NOT NULL,
			movement_type     TEXT NOT NULL,
			provenance        TEXT NOT NULL DEFAULT 'builtin',
			external_id       TEXT,
			instructions      TEXT,
			primary_muscles   TEXT[],
			secondary_muscles TEXT[],
			force             TEXT,
			level             TEXT,
			category          TEXT,
			images            TEXT[],
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS exercises_name_lower_idx ON exercises ((lower(name)))`,
		`CREATE TABLE IF NOT EXISTS exercise_substitutions (
			id              SERIAL PRIMARY KEY,
			exercise_name   TEXT NOT NULL,
			substitute_name TEXT NOT NULL,
			rank            INT NOT NULL,
			UNIQUE (exercise_name, substitute_name)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertEntries writes the final catalog in one transaction. Conflicting
// names are overwritten (last write wins at the storage layer; provenance
// ordering is already enforced by the merger).
func (s *CatalogStore) UpsertEntries(ctx context.Context, entries []CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO exercises
			(name, muscle_group, equipment_class, movement_type, provenance,
			 external_id, instructions, primary_muscles, secondary_muscles,
			 force, level, category, images, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9,
			NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13, now())
		ON CONFLICT ((lower(name))) DO UPDATE SET
			name              = EXCLUDED.name,
			muscle_group      = EXCLUDED.muscle_group,
			equipment_class   = EXCLUDED.equipment_class,
			movement_type     = EXCLUDED.movement_type,
			provenance        = EXCLUDED.provenance,
			external_id       = EXCLUDED.external_id,
			instructions      = EXCLUDED.instructions,
			primary_muscles   = EXCLUDED.primary_muscles,
			secondary_muscles = EXCLUDED.secondary_muscles,
			force             = EXCLUDED.force,
			level             = EXCLUDED.level,
			category          = EXCLUDED.category,
			images            = EXCLUDED.images,
			updated_at        = now()
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx,
			e.Name,
			string(e.MuscleGroup),
			string(e.EquipmentClass),
			string(e.MovementType),
			string(e.Provenance),
			e.ExternalID,
			e.Instructions,
			pq.Array(e.PrimaryMuscles),
			pq.Array(e.SecondaryMuscles),
			e.Force,
			e.Level,
			e.Category,
			pq.Array(e.Images),
		)
		if err != nil {
			return fmt.Errorf("upsert exercise %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	s.log.Info().Int("count", len(entries)).Msg("catalog persisted")
	return nil
}

// CustomEntries loads pre-existing user-created exercises so the merger can
// carry them into the final catalog.
func (s *CatalogStore) CustomEntries(ctx context.Context) ([]CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, muscle_group, equipment_class, movement_type,
		       COALESCE(external_id, ''), COALESCE(instructions, ''),
		       COALESCE(primary_muscles, '{}'), COALESCE(secondary_muscles, '{}'),
		       COALESCE(force, ''), COALESCE(level, ''), COALESCE(category, ''),
		       COALESCE(images, '{}')
		FROM exercises
		WHERE provenance = 'custom'
		ORDER BY lower(name)
	`)
	if err != nil {
		return nil, fmt.Errorf("query custom entries: %w", err)
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		var muscle, equipment, movement string
		if err := rows.Scan(&e.Name, &muscle, &equipment, &movement,
			&e.ExternalID, &e.Instructions,
			pq.Array(&e.PrimaryMuscles), pq.Array(&e.SecondaryMuscles),
			&e.Force, &e.Level, &e.Category, pq.Array(&e.Images)); err != nil {
			return nil, fmt.Errorf("scan custom entry: %w", err)
		}
		e.MuscleGroup = MuscleGroup(muscle)
		e.EquipmentClass = EquipmentClass(equipment)
		e.MovementType = MovementType(movement)
		e.Provenance = ProvenanceCustom
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SeedSubstitutions upserts the ranked substitution table. Ranks are
// reassigned on re-seed; existing edges are never deleted.
func (s *CatalogStore) SeedSubstitutions(ctx context.Context, edges []SubstitutionEdge) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO exercise_substitutions (exercise_name, substitute_name, rank)
		VALUES ($1, $2, $3)
		ON CONFLICT (exercise_name, substitute_name) DO UPDATE SET rank = EXCLUDED.rank
	`)
	if err != nil {
		return fmt.Errorf("prepare substitution upsert: %w", err)
	}
	defer stmt.Close()

	for _, edge := range edges {
		if _, err := stmt.ExecContext(ctx, edge.ExerciseName, edge.SubstituteName, edge.Rank); err != nil {
			return fmt.Errorf("upsert substitution %s -> %s: %w", edge.ExerciseName, edge.SubstituteName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit substitutions: %w", err)
	}
	s.log.Info().Int("count", len(edges)).Msg("substitution table seeded")
	return nil
}
