package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector() *ImportSelector {
	taxonomy := NewTaxonomyMapper(DefaultMuscleMap(), DefaultEquipmentMap())
	return NewImportSelector(taxonomy, DefaultAllowedCategories())
}

func TestSelectImportsFilters(t *testing.T) {
	s := newTestSelector()

	external := []ExternalExercise{
		{ID: "keep", Name: "Hip_Thrust", Category: "strength", PrimaryMuscles: []string{"glutes"}},
		{ID: "consumed", Name: "Bench_Press", Category: "strength", PrimaryMuscles: []string{"chest"}},
		{ID: "cardio", Name: "Jogging", Category: "cardio", PrimaryMuscles: []string{"quadriceps"}},
		{ID: "no-muscle", Name: "Mystery_Move", Category: "strength"},
		{ID: "neck", Name: "Neck_Bridge", Category: "strength", PrimaryMuscles: []string{"neck"}},
	}
	consumed := map[string]bool{"consumed": true}

	imports := s.SelectImports(external, consumed)

	require.Len(t, imports, 1)
	assert.Equal(t, "keep", imports[0].ID)
}

func TestSelectImportsPreservesOrder(t *testing.T) {
	s := newTestSelector()

	external := []ExternalExercise{
		{ID: "3", Name: "C", Category: "powerlifting", PrimaryMuscles: []string{"quadriceps"}},
		{ID: "1", Name: "A", Category: "strength", PrimaryMuscles: []string{"chest"}},
		{ID: "2", Name: "B", Category: "strongman", PrimaryMuscles: []string{"traps"}},
	}

	imports := s.SelectImports(external, nil)

	require.Len(t, imports, 3)
	assert.Equal(t, "3", imports[0].ID)
	assert.Equal(t, "1", imports[1].ID)
	assert.Equal(t, "2", imports[2].ID)
}

func TestSelectImportsAllSelectedAreMappable(t *testing.T) {
	taxonomy := NewTaxonomyMapper(DefaultMuscleMap(), DefaultEquipmentMap())
	s := NewImportSelector(taxonomy, DefaultAllowedCategories())

	allowed := make(map[string]bool)
	for _, c := range DefaultAllowedCategories() {
		allowed[c] = true
	}

	external := []ExternalExercise{
		{ID: "a", Name: "A", Category: "strength", PrimaryMuscles: []string{"chest"}},
		{ID: "b", Name: "B", Category: "stretching", PrimaryMuscles: []string{"hamstrings"}},
		{ID: "c", Name: "C", Category: "olympic weightlifting", PrimaryMuscles: []string{"shoulders"}},
		{ID: "d", Name: "D", Category: "strength", PrimaryMuscles: []string{"unknown muscle"}},
	}

	for _, imp := range s.SelectImports(external, nil) {
		assert.True(t, allowed[imp.Category], "%s category %q not allowed", imp.ID, imp.Category)
		_, ok := taxonomy.MapMuscle(imp.PrimaryMuscles[0])
		assert.True(t, ok, "%s primary muscle %q not mappable", imp.ID, imp.PrimaryMuscles[0])
	}
}

func TestSelectImportsEmptyInput(t *testing.T) {
	s := newTestSelector()
	assert.Empty(t, s.SelectImports(nil, nil))
}
