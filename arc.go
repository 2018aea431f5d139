package lyrica

import (
	"gonum.org/v1/gonum/stat"
)

// lineSentiment is the non-contextual per-line sentiment used by the
// narrative arc: the difference of positive and negative lexicon totals
// normalized by the line's token count, clamped to [-1, 1]. Negation and
// modifier handling is skipped; the arc tracks trend, not precise polarity.
func lineSentiment(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	pos := scoreTokens(tokens, positiveLexicon, nil, false)
	neg := scoreTokens(tokens, negativeLexicon, nil, false)
	return clamp((pos.total-neg.total)/float64(len(tokens)), -1, 1)
}

// narrativeArc classifies the sentiment trajectory across the song into one
// of four shapes by comparing the means of up to cfg.ArcWindows roughly
// equal line windows. Inputs shorter than three lines are always steady.
func narrativeArc(lineTokens [][]string, cfg *Config) ArcShape {
	if len(lineTokens) < 3 {
		return ArcSteady
	}

	sentiments := make([]float64, len(lineTokens))
	for i, tokens := range lineTokens {
		sentiments[i] = lineSentiment(tokens)
	}

	windows := cfg.ArcWindows
	if windows > len(sentiments) {
		windows = len(sentiments)
	}

	means := make([]float64, windows)
	for w := 0; w < windows; w++ {
		start := w * len(sentiments) / windows
		end := (w + 1) * len(sentiments) / windows
		if end <= start {
			end = start + 1
		}
		means[w] = stat.Mean(sentiments[start:end], nil)
	}

	rises, falls := 0, 0
	for w := 1; w < windows; w++ {
		delta := means[w] - means[w-1]
		switch {
		case delta > cfg.ArcStepThreshold:
			rises++
		case delta < -cfg.ArcStepThreshold:
			falls++
		}
	}

	shift := means[windows-1] - means[0]
	switch {
	case shift > cfg.ArcShiftThreshold && rises >= 1 && rises >= 2*falls:
		return ArcBuild
	case shift < -cfg.ArcShiftThreshold && falls >= 1 && falls >= 2*rises:
		return ArcDecline
	case rises > 0 && falls > 0:
		return ArcWave
	case rises > 0:
		return ArcBuild
	case falls > 0:
		return ArcDecline
	default:
		return ArcSteady
	}
}

// buildHeatmap computes one display point per line, capped at cfg.HeatmapLimit.
// Line sentiment uses the stabilized +2 denominator so single-word lines do
// not pin to the extremes; intensity saturates at three lexicon hits.
func buildHeatmap(lines []string, lineTokens [][]string, cfg *Config) []HeatmapPoint {
	limit := len(lines)
	if limit > cfg.HeatmapLimit {
		limit = cfg.HeatmapLimit
	}

	points := make([]HeatmapPoint, 0, limit)
	for i := 0; i < limit; i++ {
		pos := scoreTokens(lineTokens[i], positiveLexicon, nil, false)
		neg := scoreTokens(lineTokens[i], negativeLexicon, nil, false)

		sentiment := (pos.total - neg.total) / (abs(pos.total) + abs(neg.total) + 2)
		intensity := clamp(float64(pos.hits+neg.hits)/3, 0, 1)

		points = append(points, HeatmapPoint{
			Line:      lines[i],
			Sentiment: clamp(sentiment, -1, 1),
			Intensity: intensity,
		})
	}
	return points
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
