package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher() *Matcher {
	return NewMatcher(newTestScorer(), zerolog.Nop())
}

func TestMatchManualOverride(t *testing.T) {
	m := newTestMatcher()

	internal := []ExerciseRecord{
		{Name: "Bench Press", MuscleGroup: MuscleChest, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
	}
	external := []ExternalExercise{
		{ID: "A", Name: "Barbell_Bench_Press_-_Medium_Grip", Category: "strength", PrimaryMuscles: []string{"chest"}},
	}
	overrides := map[string]string{"Bench Press": "A"}

	outcome := m.Match(internal, external, overrides)

	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, MatchManual, outcome.Matches[0].Type)
	assert.Equal(t, 1.0, outcome.Matches[0].Score)
	assert.Equal(t, "A", outcome.Matches[0].External.ID)
	assert.Empty(t, outcome.Unmatched)
	assert.True(t, outcome.Consumed["A"])
}

func TestMatchNoCandidateAboveThreshold(t *testing.T) {
	m := newTestMatcher()

	internal := []ExerciseRecord{{Name: "Zzz Unknown Exercise"}}
	external := []ExternalExercise{
		{ID: "B", Name: "Totally Different Move", Category: "strength", PrimaryMuscles: []string{"chest"}},
	}

	outcome := m.Match(internal, external, nil)

	assert.Empty(t, outcome.Matches)
	require.Len(t, outcome.Unmatched, 1)
	assert.Equal(t, "Zzz Unknown Exercise", outcome.Unmatched[0].Name)
	assert.False(t, outcome.Consumed["B"], "B must remain an importable candidate")
}

func TestMatchFuzzyPicksBestCandidate(t *testing.T) {
	m := newTestMatcher()

	internal := []ExerciseRecord{{Name: "Bench Press"}}
	external := []ExternalExercise{
		{ID: "inc", Name: "Incline_Bench_Press"},
		{ID: "exact", Name: "Barbell_Bench_Press"},
	}

	outcome := m.Match(internal, external, nil)

	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, "exact", outcome.Matches[0].External.ID, "exact match must beat the earlier contains candidate")
	assert.Equal(t, MatchExact, outcome.Matches[0].Type)
}

func TestMatchConsumptionIsUnique(t *testing.T) {
	m := newTestMatcher()

	// Both internal records would match external "A"; the first in catalog
	// order claims it and the second falls to its next-best option.
	internal := []ExerciseRecord{
		{Name: "Bench Press"},
		{Name: "Barbell Bench Press"},
	}
	external := []ExternalExercise{
		{ID: "A", Name: "Bench_Press"},
		{ID: "B", Name: "Incline_Bench_Press"},
	}

	outcome := m.Match(internal, external, nil)

	require.Len(t, outcome.Matches, 2)
	seen := make(map[string]bool)
	for _, match := range outcome.Matches {
		assert.False(t, seen[match.External.ID], "external id %s consumed twice", match.External.ID)
		seen[match.External.ID] = true
	}
	assert.Equal(t, "A", outcome.Matches[0].External.ID)
	assert.Equal(t, "B", outcome.Matches[1].External.ID)
}

func TestMatchTieBreakFirstSeen(t *testing.T) {
	m := newTestMatcher()

	// Two externals normalize to the same contains score against the
	// internal record; the first in scan order must win.
	internal := []ExerciseRecord{{Name: "Bench Press"}}
	external := []ExternalExercise{
		{ID: "first", Name: "Incline_Bench_Press"},
		{ID: "second", Name: "Decline_Bench_Press"},
	}

	outcome := m.Match(internal, external, nil)

	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, "first", outcome.Matches[0].External.ID)
	assert.Equal(t, MatchContains, outcome.Matches[0].Type)
}

func TestMatchOverrideToMissingIDFallsBack(t *testing.T) {
	m := newTestMatcher()

	internal := []ExerciseRecord{{Name: "Bench Press"}}
	external := []ExternalExercise{
		{ID: "A", Name: "Barbell_Bench_Press"},
	}
	overrides := map[string]string{"Bench Press": "no-such-id"}

	outcome := m.Match(internal, external, overrides)

	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, "A", outcome.Matches[0].External.ID)
	assert.Equal(t, MatchExact, outcome.Matches[0].Type)
}

func TestMatchOverrideSkipsConsumedExternal(t *testing.T) {
	m := newTestMatcher()

	internal := []ExerciseRecord{
		{Name: "Bench Press"},
		{Name: "Chest Press"},
	}
	external := []ExternalExercise{
		{ID: "A", Name: "Bench_Press"},
	}
	// Both records point at A; the first consumes it, the second's
	// override is void and no other candidate scores high enough.
	overrides := map[string]string{
		"Bench Press": "A",
		"Chest Press": "A",
	}

	outcome := m.Match(internal, external, overrides)

	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, "Bench Press", outcome.Matches[0].Exercise.Name)
	require.Len(t, outcome.Unmatched, 1)
	assert.Equal(t, "Chest Press", outcome.Unmatched[0].Name)
}

func TestMatchDeterministic(t *testing.T) {
	m := newTestMatcher()

	internal := DefaultExerciseCatalog()
	external := []ExternalExercise{
		{ID: "1", Name: "Barbell_Bench_Press"},
		{ID: "2", Name: "Barbell_Squat"},
		{ID: "3", Name: "Barbell_Deadlift"},
		{ID: "4", Name: "Pullups"},
		{ID: "5", Name: "Dumbbell_Bicep_Curl"},
	}

	first := m.Match(internal, external, DefaultManualOverrides())
	second := m.Match(internal, external, DefaultManualOverrides())

	assert.Equal(t, first.Matches, second.Matches)
	assert.Equal(t, first.Unmatched, second.Unmatched)
	assert.Equal(t, first.Consumed, second.Consumed)
}
