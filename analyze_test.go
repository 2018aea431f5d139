package lyrica

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestResultBounds(t *testing.T) {
	tests := []struct {
		text string
		desc string
	}{
		{"", "Empty input"},
		{"   \n\t  \n", "Whitespace only"},
		{"!!! ??? --- ***", "Symbol noise"},
		{"love", "Single word"},
		{"I am not happy today not happy again", "Negated lyric"},
		{strings.Repeat("fire burning bright tonight\n", 200), "Very long repeated text"},
		{"LOVE JOY BRIGHT ALIVE BLESSED", "All caps"},
		{"héart über ñoche 音楽 love", "Unicode noise"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := Analyze(tt.text)

			if result.SentimentScore < -1 || result.SentimentScore > 1 {
				t.Errorf("sentiment out of range: %.3f", result.SentimentScore)
			}
			percentages := map[string]int{
				"energy":     result.EnergyScore,
				"emotion":    result.EmotionScore,
				"richness":   result.VocabularyRichness,
				"repetition": result.RepetitionScore,
				"complexity": result.EmotionalComplexity,
				"imagery":    result.ImageryDensity,
				"rhyme":      result.RhymeScore,
				"confidence": result.Confidence,
			}
			for name, v := range percentages {
				if v < 0 || v > 100 {
					t.Errorf("%s out of range: %d", name, v)
				}
			}
			for _, point := range result.Heatmap {
				if point.Sentiment < -1 || point.Sentiment > 1 {
					t.Errorf("heatmap sentiment out of range: %.3f", point.Sentiment)
				}
				if point.Intensity < 0 || point.Intensity > 1 {
					t.Errorf("heatmap intensity out of range: %.3f", point.Intensity)
				}
			}
			if len(result.Heatmap) > 50 {
				t.Errorf("heatmap exceeds cap: %d points", len(result.Heatmap))
			}
			if len(result.MoodBreakdown) == 0 || len(result.MoodBreakdown) > 5 {
				t.Errorf("mood breakdown has %d entries", len(result.MoodBreakdown))
			}
			if len(result.Themes) == 0 || len(result.Themes) > 4 {
				t.Errorf("themes has %d entries", len(result.Themes))
			}
			if len(result.TopKeywords) > 5 {
				t.Errorf("too many keywords: %d", len(result.TopKeywords))
			}
			if result.WordCount < 0 {
				t.Errorf("negative word count: %d", result.WordCount)
			}
		})
	}
}

func TestMoodBreakdownSumsToHundred(t *testing.T) {
	tests := []struct {
		text string
		desc string
	}{
		{"", "Fallback distribution"},
		{"love and joy tonight we dance", "Positive lyric"},
		{"cry alone in the cold rain\ntears of sorrow fade to grey", "Melancholic lyric"},
		{"fight the fire scream loud\nrise up against the chains", "Mixed signal lyric"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := Analyze(tt.text)

			sum := 0
			prev := math.MaxInt
			for _, m := range result.MoodBreakdown {
				sum += m.Score
				if m.Score > prev {
					t.Errorf("breakdown not descending: %v", result.MoodBreakdown)
				}
				prev = m.Score
			}
			if sum < 95 || sum > 105 {
				t.Errorf("mood scores sum to %d, want 95-105: %v", sum, result.MoodBreakdown)
			}
		})
	}
}

func TestSentimentClassification(t *testing.T) {
	positive := Analyze("love joy bright alive blessed\nlove joy bright alive blessed")
	if positive.SentimentLabel != Positive || positive.SentimentScore <= 0 {
		t.Errorf("positive lyric: label=%s score=%.3f", positive.SentimentLabel, positive.SentimentScore)
	}

	negative := Analyze("hate pain broken blood despair\nhate pain broken blood despair")
	if negative.SentimentLabel != Negative || negative.SentimentScore >= 0 {
		t.Errorf("negative lyric: label=%s score=%.3f", negative.SentimentLabel, negative.SentimentScore)
	}

	neutral := Analyze("the table and the chair stand there")
	if neutral.SentimentLabel != Neutral {
		t.Errorf("neutral lyric: label=%s score=%.3f", neutral.SentimentLabel, neutral.SentimentScore)
	}
}

func TestNegationLowersSentiment(t *testing.T) {
	plain := Analyze("I am happy today happy again")
	negated := Analyze("I am not happy today not happy again")

	if negated.SentimentScore >= plain.SentimentScore {
		t.Errorf("negation did not lower sentiment: plain=%.3f negated=%.3f",
			plain.SentimentScore, negated.SentimentScore)
	}
}

func TestChorusDetection(t *testing.T) {
	lyrics := strings.Join([]string{
		"I will rise up",
		"walking through the valley",
		"I will rise up",
		"shadows on the wall",
		"I will rise up",
		"morning finds me here",
	}, "\n")

	result := Analyze(lyrics)
	found := false
	for _, line := range result.ChorusLines {
		if line == "I will rise up" {
			found = true
		}
	}
	if !found {
		t.Errorf("repeated line missing from chorus: %v", result.ChorusLines)
	}
	if result.RepetitionScore == 0 {
		t.Error("repetition score should be positive for repeated lines")
	}

	unique := Analyze("first line here\nsecond line there\nthird line beyond")
	if len(unique.ChorusLines) != 0 {
		t.Errorf("unique lines produced chorus: %v", unique.ChorusLines)
	}
	if unique.RepetitionScore != 0 {
		t.Errorf("unique lines produced repetition %d", unique.RepetitionScore)
	}
}

func TestEmotionalComplexity(t *testing.T) {
	broad := Analyze("rage tears smile scared kiss hope shame proud")
	narrow := Analyze("rage rage rage rage rage rage rage rage")

	if broad.EmotionalComplexity <= narrow.EmotionalComplexity {
		t.Errorf("eight categories (%d) should exceed one category (%d)",
			broad.EmotionalComplexity, narrow.EmotionalComplexity)
	}
	if broad.EmotionalComplexity != 100 {
		t.Errorf("all eight categories touched, got %d", broad.EmotionalComplexity)
	}
	if narrow.DominantEmotion != "Anger" {
		t.Errorf("dominant emotion = %q, want Anger", narrow.DominantEmotion)
	}
}

func TestImageryDensity(t *testing.T) {
	concrete := Analyze("crimson eyes silver rain river moon stars skin")
	abstract := Analyze("concept reason notion premise theory question answer doubt")

	if concrete.ImageryDensity <= abstract.ImageryDensity {
		t.Errorf("concrete (%d) should exceed abstract (%d)",
			concrete.ImageryDensity, abstract.ImageryDensity)
	}
}

func TestRhymeScore(t *testing.T) {
	rhyming := Analyze(strings.Join([]string{
		"falling with the rain",
		"feeling all the pain",
		"over every hill",
		"you know that i will",
		"deep into the night",
		"searching for the light",
	}, "\n"))

	prose := Analyze(strings.Join([]string{
		"the meeting started late",
		"nobody brought an agenda",
		"we discussed the quarterly numbers",
		"then everyone went home",
	}, "\n"))

	if rhyming.RhymeScore <= prose.RhymeScore {
		t.Errorf("rhyming verse (%d) should exceed prose (%d)",
			rhyming.RhymeScore, prose.RhymeScore)
	}
}

func TestConfidenceGrowsWithSignal(t *testing.T) {
	tiny := Analyze("hello")
	rich := Analyze(strings.Join([]string{
		"rage and fury burn inside my chest",
		"tears of sorrow fall like winter rain",
		"still i smile and dance into the light",
		"scared of every shadow in the dark",
		"kiss me darling hold me through the night",
		"hope and faith will carry me tomorrow",
		"shame and guilt are lessons i regret",
		"proud and crowned in glory i will rise",
	}, "\n"))

	if tiny.WordCount != 1 {
		t.Fatalf("word count = %d, want 1", tiny.WordCount)
	}
	if tiny.Confidence >= rich.Confidence {
		t.Errorf("single word confidence (%d) should be below rich passage (%d)",
			tiny.Confidence, rich.Confidence)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	lyrics := "I will rise up\nbroken heart in the rain\nI will rise up\nlove you forever darling"
	first := Analyze(lyrics)
	second := Analyze(lyrics)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different results")
	}
}

func TestEmptyInputDefaults(t *testing.T) {
	result := Analyze("")

	if result.WordCount != 0 {
		t.Errorf("word count = %d", result.WordCount)
	}
	if result.SentimentScore != 0 || result.SentimentLabel != Neutral {
		t.Errorf("sentiment = %.3f (%s)", result.SentimentScore, result.SentimentLabel)
	}
	if result.NarrativeArc != ArcSteady {
		t.Errorf("arc = %s, want steady", result.NarrativeArc)
	}
	if result.MoodBreakdown[0].Mood != "Reflective" {
		t.Errorf("fallback top mood = %s, want Reflective", result.MoodBreakdown[0].Mood)
	}
	if !reflect.DeepEqual(result.Themes, []string{"Identity", "Ambition", "Relationships", "Healing"}) {
		t.Errorf("fallback themes = %v", result.Themes)
	}
	if result.DominantEmotion != "Neutral" {
		t.Errorf("dominant emotion = %q", result.DominantEmotion)
	}
	if result.VocabularyRichness != 0 || result.EmotionalComplexity != 0 {
		t.Errorf("richness=%d complexity=%d", result.VocabularyRichness, result.EmotionalComplexity)
	}
	if len(result.Heatmap) != 0 || len(result.ChorusLines) != 0 {
		t.Errorf("heatmap=%d chorus=%d", len(result.Heatmap), len(result.ChorusLines))
	}
}

func TestEnergyScore(t *testing.T) {
	energetic := Analyze("run fire scream loud\nriot thunder explode tonight")
	calm := Analyze("soft quiet gentle whisper\nslow serene hush slumber")

	if energetic.EnergyScore <= calm.EnergyScore {
		t.Errorf("energetic (%d) should exceed calm (%d)",
			energetic.EnergyScore, calm.EnergyScore)
	}
	if calm.EnergyScore >= 50 {
		t.Errorf("calm lyric energy = %d, want below the neutral 50", calm.EnergyScore)
	}
}

func TestPosterFields(t *testing.T) {
	result := Analyze("love you forever darling\nhold me close tonight\nkiss me under the stars")

	if result.PosterTitle != result.MoodBreakdown[0].Mood+" "+result.Themes[0] {
		t.Errorf("poster title = %q", result.PosterTitle)
	}
	wantSub := "Sentiment " // full value depends on calibration; pin the shape
	if !strings.HasPrefix(result.PosterSubline, wantSub) || !strings.Contains(result.PosterSubline, "· Energy ") {
		t.Errorf("poster subline = %q", result.PosterSubline)
	}
}

func TestTopKeywords(t *testing.T) {
	result := Analyze("love love love joy tonight\nlove is all we need")

	if len(result.TopKeywords) == 0 {
		t.Fatal("expected keywords")
	}
	if result.TopKeywords[0] != "love" {
		t.Errorf("top keyword = %q, want love", result.TopKeywords[0])
	}
	for _, kw := range result.TopKeywords {
		if isStopWord(kw) {
			t.Errorf("stop word %q surfaced as keyword", kw)
		}
	}
}

func TestChorusWeightBoostsMood(t *testing.T) {
	verse := "walking down the road\nthinking about the past"
	weighted := Analyze(verse + "\nkiss me darling lover\nkiss me darling lover\nkiss me darling lover")
	single := Analyze(verse + "\nkiss me darling lover")

	romanticScore := func(r AnalysisResult) int {
		for _, m := range r.MoodBreakdown {
			if m.Mood == "Romantic" {
				return m.Score
			}
		}
		return 0
	}
	if romanticScore(weighted) <= romanticScore(single) {
		t.Errorf("chorus repetition should boost its mood: weighted=%d single=%d",
			romanticScore(weighted), romanticScore(single))
	}
}

func BenchmarkAnalyze(b *testing.B) {
	lyrics := strings.Join([]string{
		"I will rise up from the ashes",
		"broken heart still beating in the rain",
		"I will rise up from the ashes",
		"love you forever though you're gone",
		"fire in my veins tonight",
		"I will rise up from the ashes",
	}, "\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Analyze(lyrics)
	}
}
