package main

import (
	"regexp"
	"strings"
)

// NameNormalizer canonicalizes exercise names for comparison. It strips
// brand/equipment filler words, grip and stance qualifiers, and punctuation
// so that "Barbell_Bench_Press_-_Medium_Grip" and "Bench Press" collapse to
// the same form.
type NameNormalizer struct {
	wordReplacements []wordReplacement
	phraseRules      []phraseRule
	qualifierRules   []phraseRule
	nonAlnum         *regexp.Regexp
	whitespace       *regexp.Regexp
}

type wordReplacement struct {
	pattern     *regexp.Regexp
	replacement string
}

type phraseRule struct {
	old string
	new string
}

// NewNameNormalizer builds a normalizer with the standard rule set.
func NewNameNormalizer() *NameNormalizer {
	wholeWord := func(w, repl string) wordReplacement {
		return wordReplacement{
			pattern:     regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`),
			replacement: repl,
		}
	}

	return &NameNormalizer{
		// Order matters: multi-word phrases run before single-word removals.
		phraseRules: []phraseRule{
			{"e-z curl bar", "ez-bar"},
			{"ez curl bar", "ez-bar"},
			{"body only", ""},
		},
		wordReplacements: []wordReplacement{
			wholeWord("dumbbell", "db"),
			wholeWord("barbell", ""),
			wholeWord("bodyweight", ""),
			wholeWord("standing", ""),
			wholeWord("seated", ""),
		},
		qualifierRules: []phraseRule{
			{" - medium grip", ""},
			{" - narrow stance", ""},
			{" - wide grip", " wide grip"},
		},
		nonAlnum:   regexp.MustCompile(`[^a-z0-9 ]+`),
		whitespace: regexp.MustCompile(`\s+`),
	}
}

// Normalize canonicalizes a raw exercise name. It is deterministic, never
// fails, and is idempotent: Normalize(Normalize(x)) == Normalize(x).
func (n *NameNormalizer) Normalize(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "_", " ")

	for _, r := range n.phraseRules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	for _, r := range n.qualifierRules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	for _, wr := range n.wordReplacements {
		s = wr.pattern.ReplaceAllString(s, wr.replacement)
	}

	s = n.nonAlnum.ReplaceAllString(s, "")
	s = n.whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens splits a normalized name into its set of non-empty words.
func (n *NameNormalizer) Tokens(name string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range strings.Fields(n.Normalize(name)) {
		tokens[w] = true
	}
	return tokens
}
