package main

import "strings"

// MatchConfig carries the tunable scoring parameters. The thresholds were
// chosen empirically; treat them as configuration, not invariants.
type MatchConfig struct {
	FuzzyThreshold float64 `yaml:"fuzzyThreshold"`
	ContainsScore  float64 `yaml:"containsScore"`
}

// DefaultMatchConfig returns the scoring parameters used in production.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		FuzzyThreshold: 0.7,
		ContainsScore:  0.9,
	}
}

// MatchScorer computes match confidence between internal and external
// exercise names.
type MatchScorer struct {
	normalizer *NameNormalizer
	config     MatchConfig
}

// NewMatchScorer creates a scorer over the given normalizer and config.
func NewMatchScorer(normalizer *NameNormalizer, config MatchConfig) *MatchScorer {
	return &MatchScorer{normalizer: normalizer, config: config}
}

// Similarity returns the Jaccard index over the word sets of the two
// normalized names: |intersection| / |union|, in [0,1]. Duplicate words
// collapse since the comparison is over sets, not multisets. Either side
// normalizing to the empty set yields 0.
func (s *MatchScorer) Similarity(a, b string) float64 {
	ta := s.normalizer.Tokens(a)
	tb := s.normalizer.Tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	intersection := 0
	for w := range ta {
		if tb[w] {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	return float64(intersection) / float64(union)
}

// Classify scores a candidate pairing of an internal exercise name against an
// external one. The checks form a strict priority chain: exact beats
// contains beats fuzzy, and lower-priority checks are never evaluated once a
// higher one matches. Returns ok=false when no check clears its threshold.
func (s *MatchScorer) Classify(internalName, externalName string) (score float64, matchType MatchType, ok bool) {
	na := s.normalizer.Normalize(internalName)
	nb := s.normalizer.Normalize(externalName)

	if na == nb {
		return 1.0, MatchExact, true
	}
	if na != "" && nb != "" && (strings.Contains(na, nb) || strings.Contains(nb, na)) {
		return s.config.ContainsScore, MatchContains, true
	}
	if sim := s.Similarity(internalName, externalName); sim >= s.config.FuzzyThreshold {
		return sim, MatchFuzzy, true
	}
	return 0, "", false
}
