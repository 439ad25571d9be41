package main

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// importedSampleCap bounds the report's sample of newly imported entries.
const importedSampleCap = 20

// CatalogMerger combines matched, unmatched, imported, and custom entries
// into the final catalog plus the run report.
type CatalogMerger struct {
	taxonomy     *TaxonomyMapper
	imageBaseURL string
}

// NewCatalogMerger creates a merger. Relative image paths are resolved
// against imageBaseURL at merge time.
func NewCatalogMerger(taxonomy *TaxonomyMapper, imageBaseURL string) *CatalogMerger {
	return &CatalogMerger{taxonomy: taxonomy, imageBaseURL: imageBaseURL}
}

// BuildCatalog produces the final entry list and the reconcile report.
// Builtin entries are written first and are never displaced by a later
// import or custom entry of the same name; the dedup is case-insensitive
// and enforced here rather than left to storage constraints.
func (m *CatalogMerger) BuildCatalog(outcome MatchOutcome, imports []ExternalExercise, custom []CatalogEntry) ([]CatalogEntry, ReconcileReport) {
	report := ReconcileReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Matches:     make([]ReportMatch, 0, len(outcome.Matches)),
		Unmatched:   make([]string, 0, len(outcome.Unmatched)),
	}

	matchByName := make(map[string]MatchResult, len(outcome.Matches))
	for _, match := range outcome.Matches {
		matchByName[match.Exercise.Name] = match
		report.Matches = append(report.Matches, ReportMatch{
			Exercise:        match.Exercise.Name,
			ExternalID:      match.External.ID,
			ExternalName:    match.External.Name,
			Score:           match.Score,
			Type:            match.Type,
			HasInstructions: len(match.External.Instructions) > 0,
			HasImages:       len(match.External.Images) > 0,
		})
	}
	for _, rec := range outcome.Unmatched {
		report.Unmatched = append(report.Unmatched, rec.Name)
	}

	seen := make(map[string]bool)
	catalog := make([]CatalogEntry, 0, len(outcome.Matches)+len(outcome.Unmatched)+len(imports)+len(custom))

	appendEntry := func(entry CatalogEntry) bool {
		key := strings.ToLower(entry.Name)
		if seen[key] {
			return false
		}
		seen[key] = true
		catalog = append(catalog, entry)
		return true
	}

	// Builtins first: every internal record, enriched when matched.
	for _, match := range outcome.Matches {
		appendEntry(m.builtinEntry(match.Exercise, &match.External))
	}
	for _, rec := range outcome.Unmatched {
		appendEntry(m.builtinEntry(rec, nil))
	}

	for _, ext := range imports {
		if appendEntry(m.importedEntry(ext)) {
			report.Counts.Imported++
			if len(report.ImportedSample) < importedSampleCap {
				report.ImportedSample = append(report.ImportedSample, displayName(ext.Name))
			}
		}
	}

	for _, entry := range custom {
		if appendEntry(entry) {
			report.Counts.Custom++
		}
	}

	report.Counts.Matched = len(outcome.Matches)
	report.Counts.Unmatched = len(outcome.Unmatched)
	report.Counts.Internal = len(outcome.Matches) + len(outcome.Unmatched)
	report.Counts.Catalog = len(catalog)

	return catalog, report
}

// builtinEntry turns an internal record into a catalog entry, attaching
// enrichment from the matched external record when there is one.
func (m *CatalogMerger) builtinEntry(rec ExerciseRecord, ext *ExternalExercise) CatalogEntry {
	entry := CatalogEntry{
		Name:           rec.Name,
		MuscleGroup:    rec.MuscleGroup,
		EquipmentClass: rec.EquipmentClass,
		MovementType:   rec.MovementType,
		Provenance:     ProvenanceBuiltin,
	}
	if ext == nil {
		return entry
	}

	entry.ExternalID = ext.ID
	entry.Instructions = strings.Join(ext.Instructions, "\n\n")
	entry.PrimaryMuscles = ext.PrimaryMuscles
	entry.SecondaryMuscles = ext.SecondaryMuscles
	entry.Force = ext.Force
	entry.Level = ext.Level
	entry.Category = ext.Category
	if entry.Category == "" {
		entry.Category = "strength"
	}
	entry.Images = m.resolveImages(ext.Images)
	return entry
}

// importedEntry maps an external record into the internal vocabulary.
func (m *CatalogMerger) importedEntry(ext ExternalExercise) CatalogEntry {
	muscle := MuscleFullBody
	if len(ext.PrimaryMuscles) > 0 {
		if mapped, ok := m.taxonomy.MapMuscle(ext.PrimaryMuscles[0]); ok {
			muscle = mapped
		}
	}

	movement := MovementIsolation
	if ext.Mechanic == "compound" {
		movement = MovementCompound
	}

	category := ext.Category
	if category == "" {
		category = "strength"
	}

	return CatalogEntry{
		Name:             displayName(ext.Name),
		MuscleGroup:      muscle,
		EquipmentClass:   m.taxonomy.MapEquipment(ext.Equipment),
		MovementType:     movement,
		Provenance:       ProvenanceImported,
		ExternalID:       ext.ID,
		Instructions:     strings.Join(ext.Instructions, "\n\n"),
		PrimaryMuscles:   ext.PrimaryMuscles,
		SecondaryMuscles: ext.SecondaryMuscles,
		Force:            ext.Force,
		Level:            ext.Level,
		Category:         category,
		Images:           m.resolveImages(ext.Images),
	}
}

// resolveImages joins relative image paths onto the configured base URL.
// Paths that already carry a URI scheme pass through unchanged.
func (m *CatalogMerger) resolveImages(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.Contains(p, "://") || m.imageBaseURL == "" {
			resolved = append(resolved, p)
			continue
		}
		resolved = append(resolved, strings.TrimSuffix(m.imageBaseURL, "/")+"/"+strings.TrimPrefix(p, "/"))
	}
	return resolved
}

// displayName converts a raw external name into a display string.
func displayName(raw string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(raw, "_", " ")), " ")
}
