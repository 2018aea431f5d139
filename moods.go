package lyrica

// category pairs a display name with its lexicon. Mood, theme, and emotion
// categories are closed, hand-curated sets iterated in declaration order;
// ties in any ranking favor the earlier entry.
type category struct {
	name string
	lex  *Lexicon
}

// moodCategories are the six mood dimensions of the breakdown.
var moodCategories = []category{
	{"Euphoric", newLexicon(map[string]float64{
		"dance": 1.0, "party": 1.1, "celebrate": 1.1, "high": 0.8,
		"fly": 0.9, "alive": 1.0, "electric": 1.1, "gold": 0.8,
		"shine": 1.0, "lights": 0.9, "young": 0.8, "wild": 0.9,
		"night": 0.6, "fun": 1.0, "jump": 0.9, "radio": 0.7,
		"ecstasy": 1.2, "euphoria": 1.2, "glow": 0.9, "sparkle": 1.0,
	})},
	{"Melancholic", newLexicon(map[string]float64{
		"cry": 1.1, "tears": 1.1, "rain": 0.8, "alone": 1.0,
		"empty": 1.0, "goodbye": 1.0, "grey": 0.9, "cold": 0.8,
		"winter": 0.8, "fade": 0.9, "sorrow": 1.2, "grief": 1.2,
		"miss": 0.9, "gone": 0.9, "blue": 0.7, "lonely": 1.1,
		"ghost": 0.9, "ashes": 1.0, "mourn": 1.2, "wither": 1.0,
	})},
	{"Reflective", newLexicon(map[string]float64{
		"remember": 1.1, "memory": 1.1, "time": 0.7, "years": 0.8,
		"old": 0.7, "past": 0.9, "mirror": 0.8, "think": 0.8,
		"wonder": 0.9, "road": 0.7, "miles": 0.8, "home": 0.7,
		"yesterday": 1.0, "seasons": 0.9, "change": 0.8, "lessons": 1.0,
		"looking": 0.7, "photograph": 1.1, "story": 0.8, "wiser": 1.0,
	})},
	{"Rebellious", newLexicon(map[string]float64{
		"fight": 1.1, "rules": 0.9, "break": 0.9, "run": 0.7,
		"fire": 0.8, "riot": 1.2, "chains": 1.0, "loud": 0.9,
		"scream": 1.0, "against": 0.9, "revolution": 1.2, "rebel": 1.2,
		"burn": 0.9, "smash": 1.1, "war": 0.9, "defy": 1.2,
		"anthem": 0.9, "outlaw": 1.1, "refuse": 1.0, "resist": 1.1,
	})},
	{"Romantic", newLexicon(map[string]float64{
		"love": 1.1, "kiss": 1.1, "touch": 0.9, "heart": 0.9,
		"baby": 0.8, "darling": 1.1, "arms": 0.8, "eyes": 0.7,
		"lips": 1.0, "hold": 0.8, "forever": 0.8, "sweetheart": 1.2,
		"honey": 0.9, "devotion": 1.2, "desire": 1.0, "embrace": 1.1,
		"lover": 1.1, "romance": 1.2, "tender": 1.0, "yours": 0.8,
	})},
	{"Hopeful", newLexicon(map[string]float64{
		"rise": 1.0, "tomorrow": 1.0, "light": 0.8, "dawn": 1.1,
		"faith": 1.0, "believe": 1.0, "dream": 0.9, "wings": 0.9,
		"heal": 1.0, "grow": 0.9, "sun": 0.8, "morning": 0.8,
		"new": 0.7, "stronger": 1.0, "overcome": 1.2, "promise": 0.9,
		"brighter": 1.1, "someday": 1.0, "carry": 0.7, "horizon": 1.0,
	})},
}

// fallbackMoodUnits stabilizes degenerate input: when no mood scores
// positively, Reflective gets three units and every other mood one, which
// keeps the breakdown non-zero and sums to ~100 after normalization.
const (
	fallbackMood      = "Reflective"
	fallbackMoodUnits = 3.0
)

// themeCategories are the six subject-matter dimensions.
var themeCategories = []category{
	{"Identity", newLexicon(map[string]float64{
		"name": 0.9, "skin": 0.8, "roots": 1.0, "blood": 0.8,
		"mirror": 0.9, "soul": 0.8, "self": 1.0, "become": 0.9,
		"born": 0.9, "real": 0.8, "true": 0.8, "voice": 0.9,
		"myself": 1.1, "stranger": 0.9, "belong": 1.0, "changed": 0.8,
	})},
	{"Ambition", newLexicon(map[string]float64{
		"dream": 0.8, "chase": 1.0, "top": 0.8, "crown": 1.0,
		"win": 1.0, "grind": 1.1, "hustle": 1.2, "gold": 0.8,
		"money": 0.9, "fame": 1.0, "climb": 1.0, "empire": 1.1,
		"throne": 1.1, "work": 0.8, "greater": 0.9, "higher": 0.8,
	})},
	{"Relationships", newLexicon(map[string]float64{
		"you": 0.5, "love": 0.9, "friend": 1.0, "mother": 1.0,
		"father": 1.0, "together": 1.0, "us": 0.6, "kiss": 0.9,
		"heart": 0.8, "family": 1.1, "brother": 1.0, "sister": 1.0,
		"lover": 1.0, "side": 0.6, "promise": 0.8, "trust": 0.9,
	})},
	{"Healing", newLexicon(map[string]float64{
		"heal": 1.2, "mend": 1.2, "forgive": 1.1, "breathe": 0.9,
		"grow": 0.9, "peace": 1.0, "scars": 0.9, "rise": 0.8,
		"recover": 1.2, "whole": 0.9, "light": 0.7, "release": 1.0,
		"letting": 0.9, "morning": 0.7, "gentle": 0.8, "rebuild": 1.1,
	})},
	{"Freedom", newLexicon(map[string]float64{
		"free": 1.2, "fly": 1.0, "wings": 1.0, "open": 0.8,
		"road": 0.9, "run": 0.8, "escape": 1.1, "chains": 0.9,
		"horizon": 1.1, "wind": 0.8, "wild": 0.9, "away": 0.7,
		"borders": 1.0, "breakout": 1.1, "drive": 0.8, "highway": 1.0,
	})},
	{"Faith", newLexicon(map[string]float64{
		"god": 1.2, "pray": 1.2, "heaven": 1.1, "angel": 1.0,
		"soul": 0.8, "believe": 0.9, "grace": 1.1, "lord": 1.2,
		"bless": 1.1, "spirit": 1.0, "holy": 1.2, "mercy": 1.1,
		"saved": 1.0, "kneel": 1.1, "altar": 1.1, "glory": 0.9,
	})},
}

// fallbackThemes is the fixed default when no theme scores positively.
var fallbackThemes = []string{"Identity", "Ambition", "Relationships", "Healing"}

// emotionCategories are the eight named emotions behind emotional complexity
// and the dominant emotion. They are distinct from the sentiment, energy,
// and mood lexicons; declaration order breaks ties.
var emotionCategories = []category{
	{"anger", newWordSet([]string{
		"rage", "mad", "fury", "furious", "scream", "hate",
		"burn", "fists", "fight", "vengeance", "bitter",
	})},
	{"sadness", newWordSet([]string{
		"sad", "cry", "tears", "lonely", "grief", "blue",
		"mourn", "loss", "sorrow", "weep", "gone",
	})},
	{"joy", newWordSet([]string{
		"joy", "smile", "laugh", "dance", "happy", "shine",
		"delight", "sing", "celebrate", "sunshine", "glad",
	})},
	{"fear", newWordSet([]string{
		"fear", "afraid", "scared", "trembling", "dark", "shiver",
		"dread", "haunted", "terror", "panic", "hide",
	})},
	{"love", newWordSet([]string{
		"love", "heart", "kiss", "darling", "embrace", "tender",
		"adore", "devotion", "baby", "sweetheart", "mine",
	})},
	{"hope", newWordSet([]string{
		"hope", "dream", "tomorrow", "rise", "light", "believe",
		"dawn", "faith", "wings", "promise", "someday",
	})},
	{"shame", newWordSet([]string{
		"shame", "guilt", "sorry", "regret", "blame", "apologize",
		"fault", "disgrace", "forgive", "mistake", "confess",
	})},
	{"pride", newWordSet([]string{
		"pride", "proud", "crown", "glory", "victory", "honor",
		"triumph", "champion", "throne", "unbowed", "earned",
	})},
}
