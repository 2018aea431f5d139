package lyrica

import (
	"fmt"
	"math"
	"sort"
)

// Analyzer runs the lyrics-analysis pipeline. It holds only configuration
// and the process-wide read-only lexicons, so any number of Analyzers may be
// used from concurrent goroutines without coordination.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with the given configuration.
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Analyze runs the default-calibration pipeline on a lyric text.
func Analyze(lyrics string) AnalysisResult {
	return NewAnalyzer(DefaultConfig()).Analyze(lyrics)
}

// Analyze converts raw lyric text into its structured profile. It is a pure
// function: no I/O, no randomness, no clock. Malformed or degenerate input
// (empty, whitespace, symbol noise) degrades to neutral defaults and never
// fails.
func (a *Analyzer) Analyze(lyrics string) AnalysisResult {
	cfg := a.config

	// Step 1: Normalize into tokens and lines.
	tokens := tokenize(lyrics)
	lines := splitLines(lyrics, cfg.SegmentFallback)
	lineTokens := make([][]string, len(lines))
	for i, line := range lines {
		lineTokens[i] = tokenize(line)
	}

	// Step 2: Structural signals, chorus weights and idiom phrases.
	chorus := detectChorus(lines, cfg.ChorusWeight)
	tally := scanPhrases(lyrics)

	// Step 3: Chorus-weighted mood and theme aggregation.
	moodTotals, moodHits := a.scoreCategories(moodCategories, lineTokens, chorus.weights, tally.moods)
	themeTotals, _ := a.scoreCategories(themeCategories, lineTokens, chorus.weights, tally.themes)
	breakdown := moodBreakdown(moodCategories, moodTotals)
	themes := rankThemes(themeCategories, themeTotals)

	// Step 4: Sentiment and energy over the full token stream.
	pos := scoreTokens(tokens, positiveLexicon, &cfg, true)
	neg := scoreTokens(tokens, negativeLexicon, &cfg, true)
	sentiment := sentimentScore(pos.total, neg.total, tally.sentiment)

	energy := scoreTokens(tokens, energyLexicon, &cfg, true)
	calm := scoreTokens(tokens, calmLexicon, &cfg, true)
	energyScore := energyFromHits(float64(energy.hits)+tally.energy, float64(calm.hits))

	// Step 5: Remaining dimensions.
	matches := emotionMatches(tokens)
	emotion := scoreTokens(tokens, emotionLexicon, &cfg, true)

	signal := hitWeight(pos.words, neg.words, energy.words, calm.words, emotion.words, moodHits)
	conf := confidence(len(tokens), signal, breakdown)

	keywords := topKeywords([]map[string]float64{
		pos.words, neg.words, energy.words, calm.words, emotion.words, moodHits,
	}, 5)

	// Step 6: Assemble the immutable result.
	topMood := breakdown[0].Mood
	topTheme := themes[0]

	return AnalysisResult{
		MoodBreakdown:       breakdown,
		Themes:              themes,
		SentimentScore:      sentiment,
		SentimentLabel:      labelSentiment(sentiment),
		EnergyScore:         energyScore,
		EmotionScore:        emotionSignal(tokens, &cfg, tally.emotion),
		VocabularyRichness:  vocabularyRichness(tokens),
		RepetitionScore:     repetitionScore(lines),
		EmotionalComplexity: emotionalComplexity(matches),
		ImageryDensity:      imageryDensity(tokens),
		RhymeScore:          rhymeScore(lineTokens, cfg.RhymeLookahead),
		Confidence:          conf,
		Heatmap:             buildHeatmap(lines, lineTokens, &cfg),
		PosterTitle:         topMood + " " + topTheme,
		PosterSubline:       fmt.Sprintf("Sentiment %d · Energy %d", int(math.Round(sentiment*100)), energyScore),
		NarrativeArc:        narrativeArc(lineTokens, &cfg),
		WordCount:           len(tokens),
		TopKeywords:         keywords,
		DominantEmotion:     dominantEmotion(matches),
		ChorusLines:         chorus.lines,
	}
}

// scoreCategories scores every line of the song against each category's
// lexicon with the line's chorus weight applied, then adds the phrase
// scanner's per-category deltas. Negative totals are floored at zero so a
// heavily negated category cannot drag the normalization below zero. The
// merged hit map feeds keyword extraction.
func (a *Analyzer) scoreCategories(cats []category, lineTokens [][]string, weights []float64, deltas map[string]float64) ([]float64, map[string]float64) {
	totals := make([]float64, len(cats))
	hits := make(map[string]float64)

	for c, cat := range cats {
		total := 0.0
		for i, tokens := range lineTokens {
			score := scoreTokens(tokens, cat.lex, &a.config, true)
			total += score.total * weights[i]
			for word, w := range score.words {
				hits[word] += w
			}
		}
		total += deltas[cat.name]
		if total < 0 {
			total = 0
		}
		totals[c] = total
	}
	return totals, hits
}

// moodBreakdown normalizes the top five mood totals into percentages
// summing to ~100, descending. With no positive signal anywhere the
// stabilized fallback applies: Reflective takes three units, every other
// mood one, which avoids a degenerate all-zero breakdown.
func moodBreakdown(cats []category, totals []float64) []MoodScore {
	sum := 0.0
	for _, t := range totals {
		sum += t
	}
	if sum == 0 {
		totals = make([]float64, len(cats))
		for i, cat := range cats {
			if cat.name == fallbackMood {
				totals[i] = fallbackMoodUnits
			} else {
				totals[i] = 1
			}
		}
	}

	order := make([]int, len(cats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	if len(order) > 5 {
		order = order[:5]
	}
	kept := 0.0
	for _, i := range order {
		kept += totals[i]
	}

	breakdown := make([]MoodScore, 0, len(order))
	for _, i := range order {
		if totals[i] == 0 && len(breakdown) > 0 {
			break
		}
		breakdown = append(breakdown, MoodScore{
			Mood:  cats[i].name,
			Score: int(math.Round(totals[i] / kept * 100)),
		})
	}
	return breakdown
}

// rankThemes returns up to four positively scoring theme names, strongest
// first, or the fixed default list when nothing scores.
func rankThemes(cats []category, totals []float64) []string {
	order := make([]int, len(cats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	var themes []string
	for _, i := range order {
		if totals[i] <= 0 || len(themes) == 4 {
			break
		}
		themes = append(themes, cats[i].name)
	}
	if len(themes) == 0 {
		themes = append(themes, fallbackThemes...)
	}
	return themes
}

// sentimentScore combines the contextual positive/negative totals with the
// phrase deltas. The +5 smoothing keeps short inputs away from the extremes;
// phrase sentiment enters at 0.15 weight.
func sentimentScore(pos, neg, phraseDelta float64) float64 {
	raw := (pos - neg) / (abs(pos) + abs(neg) + 5)
	raw += phraseDelta * 0.15
	return clamp(raw, -1, 1)
}

// labelSentiment maps a score to its class. Scores between the neutral band
// and the polar thresholds read as mixed.
func labelSentiment(score float64) SentimentLabel {
	switch {
	case score > 0.25:
		return Positive
	case score < -0.25:
		return Negative
	case abs(score) <= 0.1:
		return Neutral
	default:
		return Mixed
	}
}

// energyFromHits converts energy and calm hit counts to a 0-100 score.
// Calm words widen the denominator instead of subtracting, so calm-heavy
// lyrics trend toward zero rather than going negative.
func energyFromHits(energyHits, calmHits float64) int {
	if energyHits < 0 {
		energyHits = 0
	}
	return pct((energyHits + 1) / (energyHits + calmHits + 2) * 100)
}

// hitWeight sums the absolute matched weight across hit maps; it is the
// signal-density input to the confidence estimate.
func hitWeight(maps ...map[string]float64) float64 {
	total := 0.0
	for _, m := range maps {
		for _, w := range m {
			total += w
		}
	}
	return total
}
