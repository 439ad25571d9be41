package main

import "github.com/rs/zerolog"

// MatchOutcome is the result of one matching pass. Consumed is the set of
// external ids claimed by matches; it is handed to the import selector so
// the data dependency between the two phases stays an explicit parameter.
type MatchOutcome struct {
	Matches   []MatchResult
	Unmatched []ExerciseRecord
	Consumed  map[string]bool
}

// Matcher pairs internal catalog records with external database records.
type Matcher struct {
	scorer *MatchScorer
	log    zerolog.Logger
}

// NewMatcher creates a matcher over the given scorer.
func NewMatcher(scorer *MatchScorer, log zerolog.Logger) *Matcher {
	return &Matcher{scorer: scorer, log: log}
}

// Match produces a best-effort 1:1 pairing between the internal and external
// catalogs. Manual overrides win outright; otherwise the best-scoring fuzzy
// candidate above the threshold is taken. Each external record is consumed
// by at most one match, so the iteration order of the internal catalog
// decides who wins a contested external record: earlier records claim first.
// Ties on score go to the first-seen candidate in external-catalog order.
func (m *Matcher) Match(internal []ExerciseRecord, external []ExternalExercise, overrides map[string]string) MatchOutcome {
	byID := make(map[string]*ExternalExercise, len(external))
	for i := range external {
		byID[external[i].ID] = &external[i]
	}

	outcome := MatchOutcome{Consumed: make(map[string]bool)}

	for _, rec := range internal {
		if extID, ok := overrides[rec.Name]; ok {
			if ext, exists := byID[extID]; exists && !outcome.Consumed[extID] {
				outcome.Consumed[extID] = true
				outcome.Matches = append(outcome.Matches, MatchResult{
					Exercise: rec,
					External: *ext,
					Score:    1.0,
					Type:     MatchManual,
				})
				continue
			}
			m.log.Warn().Str("exercise", rec.Name).Str("externalId", extID).
				Msg("manual override points at a missing or already-consumed external id")
		}

		var best *MatchResult
		for i := range external {
			ext := &external[i]
			if outcome.Consumed[ext.ID] {
				continue
			}
			score, matchType, ok := m.scorer.Classify(rec.Name, ext.Name)
			if !ok {
				continue
			}
			// Strictly greater: first-seen wins on equal scores.
			if best == nil || score > best.Score {
				best = &MatchResult{Exercise: rec, External: *ext, Score: score, Type: matchType}
			}
		}

		if best != nil && best.Score >= m.scorer.config.FuzzyThreshold {
			outcome.Consumed[best.External.ID] = true
			outcome.Matches = append(outcome.Matches, *best)
			m.log.Debug().Str("exercise", rec.Name).Str("external", best.External.Name).
				Float64("score", best.Score).Str("type", string(best.Type)).Msg("matched")
			continue
		}

		outcome.Unmatched = append(outcome.Unmatched, rec)
	}

	return outcome
}
