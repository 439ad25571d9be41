package main

// ImportSelector identifies external records worth adding to the catalog as
// new entries: not consumed by matching, in an allowed category, and with a
// primary muscle the taxonomy can map. Records missing a primary muscle are
// skipped silently; not importable is a normal outcome, not an error.
type ImportSelector struct {
	taxonomy *TaxonomyMapper
	allowed  map[string]bool
}

// NewImportSelector creates a selector for the given allowed categories.
func NewImportSelector(taxonomy *TaxonomyMapper, allowedCategories []string) *ImportSelector {
	allowed := make(map[string]bool, len(allowedCategories))
	for _, c := range allowedCategories {
		allowed[c] = true
	}
	return &ImportSelector{taxonomy: taxonomy, allowed: allowed}
}

// SelectImports filters the external catalog down to importable records,
// preserving external-catalog order.
func (s *ImportSelector) SelectImports(external []ExternalExercise, consumed map[string]bool) []ExternalExercise {
	var imports []ExternalExercise
	for _, ext := range external {
		if consumed[ext.ID] {
			continue
		}
		if !s.allowed[ext.Category] {
			continue
		}
		if len(ext.PrimaryMuscles) == 0 {
			continue
		}
		if _, ok := s.taxonomy.MapMuscle(ext.PrimaryMuscles[0]); !ok {
			continue
		}
		imports = append(imports, ext)
	}
	return imports
}
