package main

import "time"

// MuscleGroup is the internal controlled vocabulary for primary muscles.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCore       MuscleGroup = "core"
	MuscleTraps      MuscleGroup = "traps"
	MuscleFullBody   MuscleGroup = "full body"
)

// EquipmentClass is the internal controlled vocabulary for equipment.
type EquipmentClass string

const (
	EquipmentBarbell    EquipmentClass = "barbell"
	EquipmentDumbbell   EquipmentClass = "dumbbell"
	EquipmentMachine    EquipmentClass = "machine"
	EquipmentCable      EquipmentClass = "cable"
	EquipmentBodyweight EquipmentClass = "bodyweight"
	EquipmentKettlebell EquipmentClass = "kettlebell"
	EquipmentBand       EquipmentClass = "band"
	EquipmentOther      EquipmentClass = "other"
)

// MovementType distinguishes compound from isolation movements.
type MovementType string

const (
	MovementCompound  MovementType = "compound"
	MovementIsolation MovementType = "isolation"
)

// ExerciseRecord is one entry of the curated internal catalog.
type ExerciseRecord struct {
	Name           string         `json:"name" yaml:"name"`
	MuscleGroup    MuscleGroup    `json:"muscleGroup" yaml:"muscleGroup"`
	EquipmentClass EquipmentClass `json:"equipmentClass" yaml:"equipmentClass"`
	MovementType   MovementType   `json:"movementType" yaml:"movementType"`
}

// ExternalExercise is one record of the third-party exercise database.
// Field names follow the upstream JSON schema.
type ExternalExercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            string   `json:"force"`
	Level            string   `json:"level"`
	Mechanic         string   `json:"mechanic"`
	Equipment        string   `json:"equipment"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
	Images           []string `json:"images"`
}

// MatchType records how a match between an internal and external record was made.
type MatchType string

const (
	MatchManual   MatchType = "manual"
	MatchExact    MatchType = "exact"
	MatchContains MatchType = "contains"
	MatchFuzzy    MatchType = "fuzzy"
)

// MatchResult associates one internal record with one external record.
// Each external record is consumed by at most one MatchResult per run.
type MatchResult struct {
	Exercise ExerciseRecord   `json:"exercise"`
	External ExternalExercise `json:"external"`
	Score    float64          `json:"score"`
	Type     MatchType        `json:"type"`
}

// Provenance tags the origin of a catalog entry.
type Provenance string

const (
	ProvenanceBuiltin  Provenance = "builtin"
	ProvenanceImported Provenance = "imported"
	ProvenanceCustom   Provenance = "custom"
)

// CatalogEntry is the final persisted form of an exercise: a curated record
// with optional enrichment, an import mapped into the internal vocabulary,
// or a pre-existing user-created entry.
type CatalogEntry struct {
	Name             string         `json:"name"`
	MuscleGroup      MuscleGroup    `json:"muscleGroup"`
	EquipmentClass   EquipmentClass `json:"equipmentClass"`
	MovementType     MovementType   `json:"movementType"`
	Provenance       Provenance     `json:"provenance"`
	ExternalID       string         `json:"externalId,omitempty"`
	Instructions     string         `json:"instructions,omitempty"`
	PrimaryMuscles   []string       `json:"primaryMuscles,omitempty"`
	SecondaryMuscles []string       `json:"secondaryMuscles,omitempty"`
	Force            string         `json:"force,omitempty"`
	Level            string         `json:"level,omitempty"`
	Category         string         `json:"category,omitempty"`
	Images           []string       `json:"images,omitempty"`
}

// SubstitutionEdge is a ranked recommendation that SubstituteName may replace
// ExerciseName in a workout. Lower rank means higher preference.
type SubstitutionEdge struct {
	ExerciseName   string `json:"exerciseName" yaml:"exercise"`
	SubstituteName string `json:"substituteName" yaml:"substitute"`
	Rank           int    `json:"rank" yaml:"rank"`
}

// ReportMatch is the per-match line of the reconcile report.
type ReportMatch struct {
	Exercise        string    `json:"exercise"`
	ExternalID      string    `json:"externalId"`
	ExternalName    string    `json:"externalName"`
	Score           float64   `json:"score"`
	Type            MatchType `json:"type"`
	HasInstructions bool      `json:"hasInstructions"`
	HasImages       bool      `json:"hasImages"`
}

// ReportCounts aggregates per-provenance totals for the reconcile report.
type ReportCounts struct {
	Internal  int `json:"internal"`
	External  int `json:"external"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Imported  int `json:"imported"`
	Custom    int `json:"custom"`
	Catalog   int `json:"catalog"`
}

// ReconcileReport is the human-reviewable summary of one pipeline run.
// It has no effect on catalog correctness.
type ReconcileReport struct {
	RunID          string        `json:"runId"`
	GeneratedAt    time.Time     `json:"generatedAt"`
	Counts         ReportCounts  `json:"counts"`
	Matches        []ReportMatch `json:"matches"`
	Unmatched      []string      `json:"unmatched"`
	ImportedSample []string      `json:"importedSample"`
}
