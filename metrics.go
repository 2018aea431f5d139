package lyrica

import "strings"

// vocabularyRichness is the unique-to-total token ratio as a percentage.
func vocabularyRichness(tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}
	unique := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		unique[t] = true
	}
	return pct(float64(len(unique)) / float64(len(tokens)) * 100)
}

// imageryDensity measures concrete, sensory vocabulary per token. The x500
// scale maps roughly 20% imagery-word density to a full score.
func imageryDensity(tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}
	score := scoreTokens(tokens, imageryLexicon, nil, false)
	return pct(score.total / float64(len(tokens)) * 500)
}

// emotionSignal measures general feeling vocabulary per token, mirroring the
// imagery construction at a x400 scale. Bigram emotion deltas are added by
// the caller before scaling.
func emotionSignal(tokens []string, cfg *Config, bigramDelta float64) int {
	if len(tokens) == 0 {
		return 0
	}
	score := scoreTokens(tokens, emotionLexicon, cfg, true)
	return pct((score.total + bigramDelta) / float64(len(tokens)) * 400)
}

// rhymeScore counts end-rhyme pairs: each line's final token is compared,
// by its last-three-character suffix, against the final tokens of the next
// up-to-lookahead lines. Identical words do not rhyme with themselves. The
// pair count is normalized by half the line count.
func rhymeScore(lineTokens [][]string, lookahead int) int {
	if len(lineTokens) < 2 {
		return 0
	}

	finals := make([]string, len(lineTokens))
	for i, tokens := range lineTokens {
		if len(tokens) > 0 {
			finals[i] = tokens[len(tokens)-1]
		}
	}

	pairs := 0
	for i, word := range finals {
		if word == "" {
			continue
		}
		for j := i + 1; j <= i+lookahead && j < len(finals); j++ {
			partner := finals[j]
			if partner == "" || partner == word {
				continue
			}
			if rhymeSuffix(word) == rhymeSuffix(partner) {
				pairs++
				break
			}
		}
	}

	return pct(float64(pairs) / float64(len(lineTokens)/2) * 100)
}

// rhymeSuffix is the last three characters of a word, or the whole word when
// it is two characters or shorter.
func rhymeSuffix(word string) string {
	if len(word) <= 2 {
		return word
	}
	return word[len(word)-3:]
}

// emotionMatches counts, per emotion category, tokens matching exactly or by
// stem. Order follows the category declaration order.
func emotionMatches(tokens []string) []int {
	counts := make([]int, len(emotionCategories))
	for i, cat := range emotionCategories {
		score := scoreTokens(tokens, cat.lex, nil, false)
		counts[i] = score.hits
	}
	return counts
}

// emotionalComplexity is the share of the eight emotion categories with at
// least one matching token.
func emotionalComplexity(matches []int) int {
	touched := 0
	for _, n := range matches {
		if n > 0 {
			touched++
		}
	}
	return pct(float64(touched) / float64(len(emotionCategories)) * 100)
}

// dominantEmotion is the category with the highest match count, title-cased;
// ties favor the earlier category and no match at all yields "Neutral".
func dominantEmotion(matches []int) string {
	best, bestCount := -1, 0
	for i, n := range matches {
		if n > bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		return "Neutral"
	}
	name := emotionCategories[best].name
	return strings.ToUpper(name[:1]) + name[1:]
}

// confidence blends three normalized reliability factors: input length,
// lexicon signal density, and how decisively the top mood leads the second.
func confidence(tokenCount int, signalWeight float64, breakdown []MoodScore) int {
	wordFactor := clamp(float64(tokenCount)/50, 0, 1)

	signalFactor := 0.0
	if tokenCount > 0 {
		signalFactor = clamp(signalWeight/(float64(tokenCount)*0.3), 0, 1)
	}

	moodFactor := 0.3
	if len(breakdown) > 0 && breakdown[0].Score > 0 {
		top := float64(breakdown[0].Score)
		second := 0.0
		if len(breakdown) > 1 {
			second = float64(breakdown[1].Score)
		}
		moodFactor = clamp((top-second)/top+0.3, 0, 1)
	}

	return pct((0.3*wordFactor + 0.4*signalFactor + 0.3*moodFactor) * 100)
}
