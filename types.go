package lyrica

// SentimentLabel classifies the overall emotional polarity of a lyric.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
	Neutral  SentimentLabel = "neutral"
	Mixed    SentimentLabel = "mixed" // comparable positive and negative signal
)

// ArcShape describes the coarse sentiment trajectory across a song.
type ArcShape string

const (
	ArcBuild   ArcShape = "build"   // sentiment rises toward the end
	ArcDecline ArcShape = "decline" // sentiment falls toward the end
	ArcWave    ArcShape = "wave"    // both rises and falls, no dominant direction
	ArcSteady  ArcShape = "steady"  // flat, or too short to classify
)

// MoodScore is one entry of the mood breakdown. Scores are percentages and
// the full breakdown sums to ~100 before truncation to the top five.
type MoodScore struct {
	Mood  string `json:"mood"`
	Score int    `json:"score"`
}

// HeatmapPoint carries per-line sentiment and intensity for display.
type HeatmapPoint struct {
	Line      string  `json:"line"`
	Sentiment float64 `json:"sentiment"` // -1.0 to 1.0
	Intensity float64 `json:"intensity"` // 0.0 to 1.0
}

// AnalysisResult is the complete structured profile of one lyric text. It is
// constructed once per Analyze call and never shared or mutated afterward;
// callers own it and may serialize it verbatim.
type AnalysisResult struct {
	MoodBreakdown []MoodScore `json:"moodBreakdown"` // top 5, descending
	Themes        []string    `json:"themes"`        // top 4

	SentimentScore float64        `json:"sentimentScore"` // -1.0 to 1.0
	SentimentLabel SentimentLabel `json:"sentimentLabel"`

	// Percentage-typed dimensions, each clamped to 0-100.
	EnergyScore         int `json:"energyScore"`
	EmotionScore        int `json:"emotionScore"`
	VocabularyRichness  int `json:"vocabularyRichness"`
	RepetitionScore     int `json:"repetitionScore"`
	EmotionalComplexity int `json:"emotionalComplexity"`
	ImageryDensity      int `json:"imageryDensity"`
	RhymeScore          int `json:"rhymeScore"`
	Confidence          int `json:"confidence"`

	Heatmap []HeatmapPoint `json:"heatmap"` // one per line, capped

	PosterTitle   string `json:"posterTitle"`
	PosterSubline string `json:"posterSubline"`

	NarrativeArc    ArcShape `json:"narrativeArc"`
	WordCount       int      `json:"wordCount"`
	TopKeywords     []string `json:"topKeywords"`     // up to 5 matched words
	DominantEmotion string   `json:"dominantEmotion"` // title-cased, "Neutral" if none
	ChorusLines     []string `json:"chorusLines"`     // repeated lines, original casing
}

// Config tunes the analysis pipeline. The defaults reproduce the published
// calibration; tests pin against them.
type Config struct {
	NegationWindow    int     // tokens of lookback for negation/intensity
	NegationFactor    float64 // multiplier applied under negation (reduces, does not invert)
	AmplifierFactor   float64 // multiplier for intensity amplifiers
	DampenerFactor    float64 // multiplier for intensity dampeners
	ChorusWeight      float64 // line weight for detected chorus lines
	HeatmapLimit      int     // maximum heatmap points
	RhymeLookahead    int     // lines scanned ahead for a rhyme partner
	ArcWindows        int     // sliding windows for the narrative arc
	ArcStepThreshold  float64 // window-to-window delta counted as rise/fall
	ArcShiftThreshold float64 // first-to-last delta for build/decline
	SegmentFallback   bool    // Punkt sentence segmentation for newline-free input
}

// DefaultConfig returns the standard calibration.
func DefaultConfig() Config {
	return Config{
		NegationWindow:    2,
		NegationFactor:    -0.8,
		AmplifierFactor:   1.5,
		DampenerFactor:    0.5,
		ChorusWeight:      1.5,
		HeatmapLimit:      50,
		RhymeLookahead:    3,
		ArcWindows:        5,
		ArcStepThreshold:  0.06,
		ArcShiftThreshold: 0.15,
		SegmentFallback:   true,
	}
}
