package lyrica

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// topKeywords ranks matched lexicon words by their accumulated hit weight
// and returns up to limit of them. Stop words are filtered out so function
// words that slipped into a lexicon context never surface as keywords.
func topKeywords(hitMaps []map[string]float64, limit int) []string {
	merged := make(map[string]float64)
	for _, hits := range hitMaps {
		for word, weight := range hits {
			merged[word] += weight
		}
	}

	type candidate struct {
		word   string
		weight float64
	}
	ranked := make([]candidate, 0, len(merged))
	for word, weight := range merged {
		if isStopWord(word) {
			continue
		}
		ranked = append(ranked, candidate{word, weight})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	keywords := make([]string, 0, len(ranked))
	for _, c := range ranked {
		keywords = append(keywords, c.word)
	}
	return keywords
}

// isStopWord reports whether the stopwords corpus filters the word out.
// CleanString returns an empty (or whitespace) string for pure stop words.
func isStopWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}
