package main

// Static lookup data for the reconciliation pipeline. Vocabulary keys follow
// the external exercise database; values are the internal controlled
// vocabulary. These are defaults only; the pipeline receives its tables
// through Config so tests and operators can substitute alternates.

// DefaultMuscleMap maps external muscle names onto internal muscle groups.
// Names absent here are deliberately unmapped: records targeting them are
// not importable.
func DefaultMuscleMap() map[string]MuscleGroup {
	return map[string]MuscleGroup{
		"abdominals":  MuscleCore,
		"abductors":   MuscleGlutes,
		"adductors":   MuscleQuads,
		"biceps":      MuscleBiceps,
		"calves":      MuscleCalves,
		"chest":       MuscleChest,
		"forearms":    MuscleForearms,
		"glutes":      MuscleGlutes,
		"hamstrings":  MuscleHamstrings,
		"lats":        MuscleBack,
		"lower back":  MuscleBack,
		"middle back": MuscleBack,
		"quadriceps":  MuscleQuads,
		"shoulders":   MuscleShoulders,
		"traps":       MuscleTraps,
		"triceps":     MuscleTriceps,
		// "neck" intentionally unmapped, no internal muscle group for it.
	}
}

// DefaultEquipmentMap maps external equipment names onto internal equipment
// classes. Anything missing resolves to EquipmentOther via the mapper.
func DefaultEquipmentMap() map[string]EquipmentClass {
	return map[string]EquipmentClass{
		"barbell":      EquipmentBarbell,
		"dumbbell":     EquipmentDumbbell,
		"e-z curl bar": EquipmentBarbell,
		"machine":      EquipmentMachine,
		"cable":        EquipmentCable,
		"body only":    EquipmentBodyweight,
		"kettlebells":  EquipmentKettlebell,
		"bands":        EquipmentBand,
	}
}

// DefaultAllowedCategories lists the external categories eligible for import.
// Non-resistance categories (stretching, cardio) are excluded.
func DefaultAllowedCategories() []string {
	return []string{
		"strength",
		"powerlifting",
		"strongman",
		"olympic weightlifting",
	}
}

// DefaultManualOverrides pins internal names to external ids where fuzzy
// matching picks the wrong candidate or none at all.
func DefaultManualOverrides() map[string]string {
	return map[string]string{
		"Romanian Deadlift":     "Romanian_Deadlift",
		"Lat Pulldown":          "Wide-Grip_Lat_Pulldown",
		"Hip Thrust":            "Barbell_Hip_Thrust",
		"Overhead Press":        "Standing_Military_Press",
		"Leg Curl":              "Seated_Leg_Curl",
		"Calf Raise":            "Standing_Calf_Raises",
		"Cable Row":             "Seated_Cable_Rows",
		"Skull Crusher":         "Lying_Triceps_Press",
		"Bulgarian Split Squat": "One_Leg_Barbell_Squat",
	}
}

// DefaultExerciseCatalog is the curated internal exercise list. Names are
// the human-facing display strings and are unique.
func DefaultExerciseCatalog() []ExerciseRecord {
	return []ExerciseRecord{
		{Name: "Bench Press", MuscleGroup: MuscleChest, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Incline Bench Press", MuscleGroup: MuscleChest, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Dumbbell Bench Press", MuscleGroup: MuscleChest, EquipmentClass: EquipmentDumbbell, MovementType: MovementCompound},
		{Name: "Chest Fly", MuscleGroup: MuscleChest, EquipmentClass: EquipmentDumbbell, MovementType: MovementIsolation},
		{Name: "Push-Up", MuscleGroup: MuscleChest, EquipmentClass: EquipmentBodyweight, MovementType: MovementCompound},
		{Name: "Dip", MuscleGroup: MuscleChest, EquipmentClass: EquipmentBodyweight, MovementType: MovementCompound},
		{Name: "Squat", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Front Squat", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Leg Press", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentMachine, MovementType: MovementCompound},
		{Name: "Leg Extension", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentMachine, MovementType: MovementIsolation},
		{Name: "Bulgarian Split Squat", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentDumbbell, MovementType: MovementCompound},
		{Name: "Lunge", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentDumbbell, MovementType: MovementCompound},
		{Name: "Deadlift", MuscleGroup: MuscleBack, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Romanian Deadlift", MuscleGroup: MuscleHamstrings, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Leg Curl", MuscleGroup: MuscleHamstrings, EquipmentClass: EquipmentMachine, MovementType: MovementIsolation},
		{Name: "Hip Thrust", MuscleGroup: MuscleGlutes, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Glute Bridge", MuscleGroup: MuscleGlutes, EquipmentClass: EquipmentBodyweight, MovementType: MovementCompound},
		{Name: "Calf Raise", MuscleGroup: MuscleCalves, EquipmentClass: EquipmentMachine, MovementType: MovementIsolation},
		{Name: "Pull-Up", MuscleGroup: MuscleBack, EquipmentClass: EquipmentBodyweight, MovementType: MovementCompound},
		{Name: "Chin-Up", MuscleGroup: MuscleBack, EquipmentClass: EquipmentBodyweight, MovementType: MovementCompound},
		{Name: "Lat Pulldown", MuscleGroup: MuscleBack, EquipmentClass: EquipmentCable, MovementType: MovementCompound},
		{Name: "Bent Over Barbell Row", MuscleGroup: MuscleBack, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Cable Row", MuscleGroup: MuscleBack, EquipmentClass: EquipmentCable, MovementType: MovementCompound},
		{Name: "Dumbbell Row", MuscleGroup: MuscleBack, EquipmentClass: EquipmentDumbbell, MovementType: MovementCompound},
		{Name: "Overhead Press", MuscleGroup: MuscleShoulders, EquipmentClass: EquipmentBarbell, MovementType: MovementCompound},
		{Name: "Dumbbell Shoulder Press", MuscleGroup: MuscleShoulders, EquipmentClass: EquipmentDumbbell, MovementType: MovementCompound},
		{Name: "Lateral Raise", MuscleGroup: MuscleShoulders, EquipmentClass: EquipmentDumbbell, MovementType: MovementIsolation},
		{Name: "Face Pull", MuscleGroup: MuscleShoulders, EquipmentClass: EquipmentCable, MovementType: MovementIsolation},
		{Name: "Shrug", MuscleGroup: MuscleTraps, EquipmentClass: EquipmentBarbell, MovementType: MovementIsolation},
		{Name: "Barbell Curl", MuscleGroup: MuscleBiceps, EquipmentClass: EquipmentBarbell, MovementType: MovementIsolation},
		{Name: "Dumbbell Curl", MuscleGroup: MuscleBiceps, EquipmentClass: EquipmentDumbbell, MovementType: MovementIsolation},
		{Name: "Hammer Curl", MuscleGroup: MuscleBiceps, EquipmentClass: EquipmentDumbbell, MovementType: MovementIsolation},
		{Name: "Triceps Pushdown", MuscleGroup: MuscleTriceps, EquipmentClass: EquipmentCable, MovementType: MovementIsolation},
		{Name: "Skull Crusher", MuscleGroup: MuscleTriceps, EquipmentClass: EquipmentBarbell, MovementType: MovementIsolation},
		{Name: "Overhead Triceps Extension", MuscleGroup: MuscleTriceps, EquipmentClass: EquipmentDumbbell, MovementType: MovementIsolation},
		{Name: "Wrist Curl", MuscleGroup: MuscleForearms, EquipmentClass: EquipmentBarbell, MovementType: MovementIsolation},
		{Name: "Plank", MuscleGroup: MuscleCore, EquipmentClass: EquipmentBodyweight, MovementType: MovementIsolation},
		{Name: "Crunch", MuscleGroup: MuscleCore, EquipmentClass: EquipmentBodyweight, MovementType: MovementIsolation},
		{Name: "Hanging Leg Raise", MuscleGroup: MuscleCore, EquipmentClass: EquipmentBodyweight, MovementType: MovementIsolation},
		{Name: "Kettlebell Swing", MuscleGroup: MuscleGlutes, EquipmentClass: EquipmentKettlebell, MovementType: MovementCompound},
		{Name: "Goblet Squat", MuscleGroup: MuscleQuads, EquipmentClass: EquipmentKettlebell, MovementType: MovementCompound},
		{Name: "Farmer's Walk", MuscleGroup: MuscleFullBody, EquipmentClass: EquipmentDumbbell, MovementType: MovementCompound},
	}
}

// DefaultSubstitutionTable is the curated ranked substitution list. Rank 1 is
// the preferred substitute. Re-seeding reassigns ranks; edges are never
// auto-deleted.
func DefaultSubstitutionTable() []SubstitutionEdge {
	return []SubstitutionEdge{
		{ExerciseName: "Bench Press", SubstituteName: "Dumbbell Bench Press", Rank: 1},
		{ExerciseName: "Bench Press", SubstituteName: "Push-Up", Rank: 2},
		{ExerciseName: "Squat", SubstituteName: "Front Squat", Rank: 1},
		{ExerciseName: "Squat", SubstituteName: "Leg Press", Rank: 2},
		{ExerciseName: "Squat", SubstituteName: "Goblet Squat", Rank: 3},
		{ExerciseName: "Deadlift", SubstituteName: "Romanian Deadlift", Rank: 1},
		{ExerciseName: "Deadlift", SubstituteName: "Hip Thrust", Rank: 2},
		{ExerciseName: "Pull-Up", SubstituteName: "Lat Pulldown", Rank: 1},
		{ExerciseName: "Pull-Up", SubstituteName: "Chin-Up", Rank: 2},
		{ExerciseName: "Overhead Press", SubstituteName: "Dumbbell Shoulder Press", Rank: 1},
		{ExerciseName: "Bent Over Barbell Row", SubstituteName: "Dumbbell Row", Rank: 1},
		{ExerciseName: "Bent Over Barbell Row", SubstituteName: "Cable Row", Rank: 2},
		{ExerciseName: "Barbell Curl", SubstituteName: "Dumbbell Curl", Rank: 1},
		{ExerciseName: "Triceps Pushdown", SubstituteName: "Overhead Triceps Extension", Rank: 1},
		{ExerciseName: "Lunge", SubstituteName: "Bulgarian Split Squat", Rank: 1},
		{ExerciseName: "Leg Curl", SubstituteName: "Romanian Deadlift", Rank: 1},
	}
}
