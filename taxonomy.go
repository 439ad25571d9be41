package main

import "strings"

// TaxonomyMapper translates the external database's muscle and equipment
// vocabularies into the internal controlled vocabulary. The tables are plain
// data handed in at construction so alternates can be substituted in tests.
type TaxonomyMapper struct {
	muscles   map[string]MuscleGroup
	equipment map[string]EquipmentClass
}

// NewTaxonomyMapper builds a mapper over the given lookup tables. Keys are
// matched case-insensitively.
func NewTaxonomyMapper(muscles map[string]MuscleGroup, equipment map[string]EquipmentClass) *TaxonomyMapper {
	m := &TaxonomyMapper{
		muscles:   make(map[string]MuscleGroup, len(muscles)),
		equipment: make(map[string]EquipmentClass, len(equipment)),
	}
	for k, v := range muscles {
		m.muscles[strings.ToLower(k)] = v
	}
	for k, v := range equipment {
		m.equipment[strings.ToLower(k)] = v
	}
	return m
}

// MapMuscle maps an external muscle name onto the internal vocabulary.
// ok is false for unmapped names, which signals the caller to skip the
// record rather than guess.
func (m *TaxonomyMapper) MapMuscle(external string) (MuscleGroup, bool) {
	group, ok := m.muscles[strings.ToLower(strings.TrimSpace(external))]
	return group, ok
}

// MapEquipment maps an external equipment name onto the internal vocabulary.
// The mapping is total: unknown or empty input falls back to EquipmentOther.
func (m *TaxonomyMapper) MapEquipment(external string) EquipmentClass {
	if class, ok := m.equipment[strings.ToLower(strings.TrimSpace(external))]; ok {
		return class
	}
	return EquipmentOther
}
