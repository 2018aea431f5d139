package lyrica

import "math"

// lexiconScore is the outcome of scoring one token sequence against one
// lexicon: the weighted total, the raw hit count, and a per-word hit map
// feeding keyword extraction.
type lexiconScore struct {
	total float64
	hits  int
	words map[string]float64
}

// scoreTokens scores tokens against a lexicon. In contextual mode the two
// (NegationWindow) preceding tokens are inspected: a negation multiplies the
// weight by the negation factor (reducing without fully inverting, the way
// natural-language negation behaves), an amplifier by the amplifier factor,
// and a dampener by the dampener factor. The three effects compose
// multiplicatively when several apply.
func scoreTokens(tokens []string, lex *Lexicon, cfg *Config, contextual bool) lexiconScore {
	score := lexiconScore{words: make(map[string]float64)}

	for i, token := range tokens {
		w, ok := lex.Weight(token)
		if !ok {
			continue
		}

		if contextual {
			w *= contextFactor(tokens, i, cfg)
		}

		score.total += w
		score.hits++
		score.words[token] += math.Abs(w)
	}
	return score
}

// contextFactor computes the combined modifier multiplier from the tokens
// preceding position i. Each modifier class applies at most once.
func contextFactor(tokens []string, i int, cfg *Config) float64 {
	start := i - cfg.NegationWindow
	if start < 0 {
		start = 0
	}

	var negated, amplified, dampened bool
	for j := start; j < i; j++ {
		if _, ok := negationLexicon.Weight(tokens[j]); ok {
			negated = true
			continue
		}
		if _, ok := amplifierLexicon.Weight(tokens[j]); ok {
			amplified = true
			continue
		}
		if _, ok := dampenerLexicon.Weight(tokens[j]); ok {
			dampened = true
		}
	}

	factor := 1.0
	if negated {
		factor *= cfg.NegationFactor
	}
	if amplified {
		factor *= cfg.AmplifierFactor
	}
	if dampened {
		factor *= cfg.DampenerFactor
	}
	return factor
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pct rounds v to an integer percentage clamped to [0, 100].
func pct(v float64) int {
	return int(math.Round(clamp(v, 0, 100)))
}
