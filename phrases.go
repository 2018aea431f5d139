package lyrica

import "strings"

// phraseRule is a fixed multi-word idiom with its own scoring contribution.
// Unigram scoring misses these: "broken heart" must land harder than
// "broken" and "heart" scored independently.
type phraseRule struct {
	phrase    string  // lowercase, matched as a substring
	mood      string  // mood category credited, if any
	theme     string  // theme category credited, if any
	sentiment float64 // delta fed into the sentiment blend
	energy    float64 // delta added to the energy hit total
	emotion   float64 // delta added to the emotion signal
	weight    float64
}

// phraseRules is a closed, hand-authored list. Keep it small: every entry
// should be an idiom whose meaning genuinely differs from its words.
var phraseRules = []phraseRule{
	{phrase: "broken heart", mood: "Melancholic", theme: "Relationships", sentiment: -1.0, emotion: 1.0, weight: 1.2},
	{phrase: "fall apart", mood: "Melancholic", sentiment: -0.8, emotion: 0.8, weight: 1.0},
	{phrase: "let you go", mood: "Melancholic", theme: "Relationships", sentiment: -0.6, emotion: 0.8, weight: 1.0},
	{phrase: "say goodbye", mood: "Melancholic", theme: "Relationships", sentiment: -0.6, emotion: 0.6, weight: 1.0},
	{phrase: "tears fall", mood: "Melancholic", sentiment: -0.8, emotion: 1.0, weight: 1.0},
	{phrase: "fading away", mood: "Melancholic", sentiment: -0.6, emotion: 0.5, weight: 0.9},
	{phrase: "in the dark", mood: "Melancholic", sentiment: -0.5, weight: 0.8},
	{phrase: "on my own", mood: "Melancholic", theme: "Identity", sentiment: -0.4, weight: 0.8},
	{phrase: "cold as ice", mood: "Melancholic", sentiment: -0.7, weight: 1.0},
	{phrase: "tear us apart", mood: "Melancholic", theme: "Relationships", sentiment: -0.8, emotion: 0.7, weight: 1.0},
	{phrase: "down in flames", mood: "Melancholic", sentiment: -0.9, energy: 0.5, weight: 1.0},
	{phrase: "out of time", mood: "Melancholic", sentiment: -0.5, weight: 0.8},
	{phrase: "lose control", mood: "Rebellious", sentiment: -0.3, energy: 0.8, weight: 0.9},
	{phrase: "burn it down", mood: "Rebellious", sentiment: -0.4, energy: 1.0, weight: 1.1},
	{phrase: "break the chains", mood: "Rebellious", theme: "Freedom", sentiment: 0.4, energy: 0.8, weight: 1.1},
	{phrase: "run away", mood: "Rebellious", theme: "Freedom", sentiment: -0.2, energy: 0.6, weight: 0.8},
	{phrase: "against the world", mood: "Rebellious", theme: "Identity", sentiment: -0.2, energy: 0.5, weight: 0.9},
	{phrase: "rise up", mood: "Hopeful", sentiment: 0.7, energy: 0.7, emotion: 0.5, weight: 1.1},
	{phrase: "lift me up", mood: "Hopeful", sentiment: 0.7, emotion: 0.6, weight: 1.0},
	{phrase: "brand new day", mood: "Hopeful", theme: "Healing", sentiment: 0.8, weight: 1.0},
	{phrase: "start again", mood: "Hopeful", theme: "Healing", sentiment: 0.6, weight: 0.9},
	{phrase: "light the way", mood: "Hopeful", sentiment: 0.7, weight: 1.0},
	{phrase: "home again", mood: "Hopeful", theme: "Healing", sentiment: 0.5, weight: 0.8},
	{phrase: "set me free", mood: "Hopeful", theme: "Freedom", sentiment: 0.6, emotion: 0.6, weight: 1.1},
	{phrase: "hold me close", mood: "Romantic", theme: "Relationships", sentiment: 0.7, emotion: 0.8, weight: 1.1},
	{phrase: "love you forever", mood: "Romantic", theme: "Relationships", sentiment: 0.9, emotion: 1.0, weight: 1.2},
	{phrase: "never let go", mood: "Romantic", theme: "Relationships", sentiment: 0.5, emotion: 0.7, weight: 1.0},
	{phrase: "miss you", mood: "Romantic", theme: "Relationships", sentiment: -0.3, emotion: 0.9, weight: 1.0},
	{phrase: "heart of gold", mood: "Romantic", sentiment: 0.8, weight: 1.0},
	{phrase: "under the stars", mood: "Romantic", sentiment: 0.5, weight: 0.9},
	{phrase: "dancing in the", mood: "Euphoric", sentiment: 0.6, energy: 0.8, weight: 0.9},
	{phrase: "give it all", mood: "Euphoric", theme: "Ambition", sentiment: 0.4, energy: 0.7, weight: 0.9},
	{phrase: "fire in my", mood: "Euphoric", theme: "Ambition", sentiment: 0.4, energy: 0.9, weight: 1.0},
}

// phraseTally accumulates the bigram-scanner contributions for one text.
type phraseTally struct {
	moods     map[string]float64
	themes    map[string]float64
	sentiment float64
	energy    float64
	emotion   float64
	matches   []string // matched phrases, in rule order, once each
}

// scanPhrases counts case-insensitive, overlap-free occurrences of every
// rule phrase in the raw text and sums their weighted deltas.
func scanPhrases(text string) phraseTally {
	tally := phraseTally{
		moods:  make(map[string]float64),
		themes: make(map[string]float64),
	}
	lower := strings.ToLower(text)

	for _, rule := range phraseRules {
		n := countOccurrences(lower, rule.phrase)
		if n == 0 {
			continue
		}
		factor := rule.weight * float64(n)
		if rule.mood != "" {
			tally.moods[rule.mood] += factor
		}
		if rule.theme != "" {
			tally.themes[rule.theme] += factor
		}
		tally.sentiment += rule.sentiment * factor
		tally.energy += rule.energy * factor
		tally.emotion += rule.emotion * factor
		tally.matches = append(tally.matches, rule.phrase)
	}
	return tally
}

// countOccurrences counts non-overlapping substring occurrences by index
// advancement.
func countOccurrences(text, phrase string) int {
	if phrase == "" {
		return 0
	}
	count, offset := 0, 0
	for {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			return count
		}
		count++
		offset += i + len(phrase)
	}
}
