package lyrica

import (
	"math"
	"testing"
)

func TestContextualScoring(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		tokens   []string
		expected float64
		desc     string
	}{
		{[]string{"happy"}, 1.1, "Bare lexicon hit"},
		{[]string{"very", "happy"}, 1.65, "Amplified"},
		{[]string{"barely", "happy"}, 0.55, "Dampened"},
		{[]string{"not", "happy"}, -0.88, "Negated reduces without inverting fully"},
		{[]string{"not", "very", "happy"}, -1.32, "Negation and amplifier compose"},
		{[]string{"happy", "not"}, 1.1, "Trailing negation has no effect"},
		{[]string{"not", "filler", "filler", "happy"}, 1.1, "Negation outside the window"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score := scoreTokens(tt.tokens, positiveLexicon, &cfg, true)
			if math.Abs(score.total-tt.expected) > 0.001 {
				t.Errorf("tokens %v: total = %.3f, want %.3f", tt.tokens, score.total, tt.expected)
			}
		})
	}
}

func TestPlainScoringIgnoresContext(t *testing.T) {
	cfg := DefaultConfig()
	tokens := []string{"not", "happy"}

	contextual := scoreTokens(tokens, positiveLexicon, &cfg, true)
	plain := scoreTokens(tokens, positiveLexicon, nil, false)

	if plain.total <= 0 {
		t.Errorf("plain total = %.3f, want positive", plain.total)
	}
	if contextual.total >= 0 {
		t.Errorf("contextual total = %.3f, want negative", contextual.total)
	}
	if plain.hits != 1 || contextual.hits != 1 {
		t.Errorf("hits = %d/%d, want 1/1", plain.hits, contextual.hits)
	}
}

func TestHitMapAccumulatesAbsoluteWeight(t *testing.T) {
	cfg := DefaultConfig()
	score := scoreTokens([]string{"happy", "not", "happy"}, positiveLexicon, &cfg, true)

	// Both occurrences contribute their magnitude to the hit map even though
	// the second is negated.
	if score.words["happy"] < 1.1+0.8 {
		t.Errorf("hit map weight = %.3f", score.words["happy"])
	}
}
