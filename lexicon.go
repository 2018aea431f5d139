package lyrica

import "sort"

// A Lexicon maps words to contribution weights for one analysis dimension.
// Lexicons are built once at package init and never mutated afterward, so
// they are safe to share across concurrent Analyze calls without locking.
type Lexicon struct {
	weights map[string]float64
	stems   map[string]float64
}

// newLexicon builds a lexicon and its stemmed-key index. The index is built
// from sorted keys so that two keys sharing a stem always resolve the same
// way, keeping the engine deterministic.
func newLexicon(weights map[string]float64) *Lexicon {
	lex := &Lexicon{
		weights: weights,
		stems:   make(map[string]float64, len(weights)),
	}

	keys := make([]string, 0, len(weights))
	for word := range weights {
		keys = append(keys, word)
	}
	sort.Strings(keys)

	for _, word := range keys {
		s := stem(word)
		if _, taken := lex.stems[s]; !taken {
			lex.stems[s] = weights[word]
		}
	}
	return lex
}

// newWordSet builds a unit-weight lexicon from a plain word list.
func newWordSet(words []string) *Lexicon {
	weights := make(map[string]float64, len(words))
	for _, w := range words {
		weights[w] = 1.0
	}
	return newLexicon(weights)
}

// Weight returns the contribution weight for a token. Lookup order: the
// verbatim token, then its stem against the raw keys, then its stem against
// the stemmed-key index.
func (lex *Lexicon) Weight(token string) (float64, bool) {
	if w, ok := lex.weights[token]; ok {
		return w, true
	}
	s := stem(token)
	if w, ok := lex.weights[s]; ok {
		return w, true
	}
	if w, ok := lex.stems[s]; ok {
		return w, true
	}
	return 0, false
}

// Size returns the number of verbatim entries.
func (lex *Lexicon) Size() int {
	return len(lex.weights)
}

// positiveLexicon covers uplifting lyric vocabulary. Weights lean on how
// unambiguous a word is in song context rather than raw intensity.
var positiveLexicon = newLexicon(map[string]float64{
	"love":      1.2,
	"joy":       1.2,
	"bright":    1.0,
	"alive":     1.1,
	"blessed":   1.2,
	"happy":     1.1,
	"hope":      1.0,
	"shine":     1.0,
	"smile":     1.0,
	"beautiful": 1.1,
	"sweet":     0.9,
	"free":      0.9,
	"heaven":    1.0,
	"light":     0.8,
	"dream":     0.8,
	"glory":     1.0,
	"grace":     1.0,
	"peace":     1.0,
	"laugh":     1.0,
	"dance":     0.9,
	"gold":      0.8,
	"golden":    0.9,
	"warm":      0.9,
	"wonder":    0.8,
	"rise":      0.8,
	"pure":      0.9,
	"home":      0.7,
	"strong":    0.9,
	"brave":     1.0,
	"heal":      1.0,
	"bloom":     0.9,
	"angel":     0.9,
	"paradise":  1.1,
	"sunshine":  1.1,
	"good":      0.8,
	"best":      1.0,
	"perfect":   1.1,
	"forever":   0.7,
	"believe":   0.9,
	"thankful":  1.1,
	"lucky":     0.9,
	"tender":    0.9,
	"delight":   1.0,
	"radiant":   1.1,
	"soar":      1.0,
	"celebrate": 1.1,
	"kiss":      0.9,
	"sing":      0.8,
})

// negativeLexicon covers dark and painful lyric vocabulary.
var negativeLexicon = newLexicon(map[string]float64{
	"hate":      1.2,
	"pain":      1.1,
	"broken":    1.1,
	"blood":     0.9,
	"despair":   1.2,
	"cry":       1.0,
	"tears":     1.0,
	"dark":      0.8,
	"death":     1.1,
	"die":       1.1,
	"dead":      1.1,
	"lost":      0.9,
	"alone":     0.9,
	"cold":      0.7,
	"fear":      1.0,
	"hurt":      1.0,
	"scars":     1.0,
	"grave":     1.0,
	"sorrow":    1.2,
	"empty":     0.9,
	"shadow":    0.7,
	"lie":       0.8,
	"lies":      0.8,
	"shame":     1.0,
	"burn":      0.8,
	"bleed":     1.1,
	"fall":      0.6,
	"goodbye":   0.8,
	"regret":    1.0,
	"wounds":    1.0,
	"grief":     1.2,
	"bitter":    1.0,
	"cruel":     1.1,
	"numb":      0.9,
	"sick":      0.9,
	"war":       0.9,
	"poison":    1.0,
	"devil":     0.9,
	"hell":      0.9,
	"drown":     1.0,
	"fade":      0.7,
	"worthless": 1.2,
	"hollow":    0.9,
	"suffer":    1.1,
	"ache":      1.0,
	"misery":    1.2,
	"wreck":     0.9,
})

// energyLexicon marks high-arousal vocabulary regardless of polarity.
var energyLexicon = newLexicon(map[string]float64{
	"run":        1.0,
	"fire":       1.1,
	"jump":       1.0,
	"loud":       1.1,
	"fight":      1.1,
	"wild":       1.0,
	"burn":       1.0,
	"fast":       1.0,
	"rush":       1.1,
	"electric":   1.2,
	"scream":     1.2,
	"shout":      1.1,
	"race":       1.0,
	"alive":      0.9,
	"power":      1.0,
	"thunder":    1.1,
	"dance":      1.0,
	"party":      1.1,
	"explode":    1.2,
	"roar":       1.1,
	"charge":     1.0,
	"adrenaline": 1.2,
	"pound":      1.0,
	"blaze":      1.1,
	"riot":       1.2,
	"storm":      1.0,
	"crash":      1.0,
	"shake":      0.9,
	"rage":       1.1,
	"bounce":     0.9,
})

// calmLexicon marks low-arousal vocabulary; calm hits widen the effective
// energy denominator rather than subtracting from the numerator.
var calmLexicon = newLexicon(map[string]float64{
	"slow":    1.0,
	"soft":    1.0,
	"quiet":   1.1,
	"still":   0.9,
	"gentle":  1.1,
	"breeze":  1.0,
	"whisper": 1.1,
	"float":   0.9,
	"drift":   0.9,
	"peace":   1.0,
	"calm":    1.2,
	"rest":    0.9,
	"sleep":   0.9,
	"hush":    1.1,
	"lull":    1.1,
	"mellow":  1.1,
	"serene":  1.2,
	"ease":    1.0,
	"silence": 1.0,
	"slumber": 1.1,
	"settle":  0.8,
})

// imageryLexicon marks concrete and sensory vocabulary: colors, body parts,
// nature objects, tangible things. Abstract conceptual words do not belong
// here even when emotionally loaded.
var imageryLexicon = newLexicon(map[string]float64{
	"red":      1.0,
	"blue":     1.0,
	"gold":     1.0,
	"silver":   1.0,
	"crimson":  1.2,
	"black":    0.9,
	"white":    0.9,
	"green":    1.0,
	"eyes":     1.0,
	"hands":    1.0,
	"skin":     1.0,
	"lips":     1.0,
	"bones":    1.1,
	"hair":     0.9,
	"veins":    1.1,
	"rain":     1.0,
	"river":    1.1,
	"ocean":    1.1,
	"mountain": 1.1,
	"moon":     1.0,
	"sun":      1.0,
	"stars":    1.0,
	"sky":      0.9,
	"smoke":    1.0,
	"glass":    1.0,
	"mirror":   1.0,
	"road":     0.9,
	"city":     0.9,
	"neon":     1.2,
	"velvet":   1.2,
	"thunder":  1.0,
	"snow":     1.0,
	"rose":     1.0,
	"garden":   1.0,
	"wind":     0.9,
	"waves":    1.0,
	"stone":    1.0,
	"diamond":  1.1,
	"candle":   1.1,
	"window":   0.9,
	"door":     0.8,
	"train":    0.9,
	"flame":    1.0,
	"dust":     0.9,
	"salt":     1.0,
	"honey":    1.0,
})

// emotionLexicon is the general feeling vocabulary behind the emotion score.
// It is broader and polarity-blind compared to the eight named categories.
var emotionLexicon = newLexicon(map[string]float64{
	"love":    1.1,
	"hate":    1.1,
	"fear":    1.0,
	"joy":     1.1,
	"cry":     1.0,
	"heart":   0.9,
	"soul":    0.9,
	"ache":    1.1,
	"longing": 1.2,
	"desire":  1.0,
	"miss":    0.9,
	"yearn":   1.2,
	"feel":    0.8,
	"tears":   1.0,
	"lonely":  1.1,
	"passion": 1.1,
	"hope":    1.0,
	"dream":   0.8,
	"hurt":    1.0,
	"happy":   1.0,
	"sad":     1.0,
	"angry":   1.0,
	"broken":  1.0,
	"burning": 0.9,
	"haunted": 1.1,
})

// negationLexicon covers negators; the tokenizer keeps apostrophes, so both
// contracted and bare forms appear.
var negationLexicon = newWordSet([]string{
	"not", "no", "never", "nor", "neither",
	"ain't", "aint", "can't", "cant", "cannot",
	"won't", "wont", "don't", "dont", "didn't", "didnt",
	"doesn't", "doesnt", "isn't", "isnt", "wasn't", "wasnt",
	"weren't", "werent", "couldn't", "couldnt",
	"wouldn't", "wouldnt", "shouldn't", "shouldnt",
	"nothing", "nobody", "nowhere", "without", "none",
})

// amplifierLexicon covers intensity boosters.
var amplifierLexicon = newWordSet([]string{
	"so", "very", "really", "too", "always", "totally",
	"completely", "deeply", "truly", "absolutely", "forever",
	"damn", "utterly", "fully",
})

// dampenerLexicon covers intensity reducers.
var dampenerLexicon = newWordSet([]string{
	"barely", "hardly", "almost", "slightly", "somewhat",
	"kinda", "little", "maybe", "sometimes", "rarely",
})
