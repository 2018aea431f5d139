package lyrica

import "strings"

// chorusInfo is the chorus detector's output: the distinct repeated lines in
// first-occurrence order (original casing) and a per-line weight multiplier
// consumed by mood and theme aggregation.
type chorusInfo struct {
	lines   []string
	weights []float64
}

// detectChorus finds lines whose lowercase-trimmed form occurs two or more
// times. Chorus lines carry the configured weight multiplier; all other
// lines weigh 1.0.
func detectChorus(lines []string, chorusWeight float64) chorusInfo {
	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		counts[strings.ToLower(line)]++
	}

	info := chorusInfo{weights: make([]float64, len(lines))}
	seen := make(map[string]bool)
	for i, line := range lines {
		key := strings.ToLower(line)
		if counts[key] >= 2 {
			info.weights[i] = chorusWeight
			if !seen[key] {
				seen[key] = true
				info.lines = append(info.lines, line)
			}
		} else {
			info.weights[i] = 1.0
		}
	}
	return info
}

// repetitionScore is the percentage of lines that exactly duplicate an
// earlier line, case- and whitespace-insensitively.
func repetitionScore(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(lines))
	duplicates := 0
	for _, line := range lines {
		key := strings.ToLower(strings.Join(strings.Fields(line), " "))
		if seen[key] {
			duplicates++
		} else {
			seen[key] = true
		}
	}
	return pct(float64(duplicates) / float64(len(lines)) * 100)
}
