package lyrica

import (
	"strings"
	"sync"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// tokenize lowercases text and splits it into alphanumeric-plus-apostrophe
// tokens. All other punctuation is treated as whitespace, so "heart-break!"
// yields [heart break]. Empty and symbol-only input yield a nil slice.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		// Quoted words keep their apostrophes after FieldsFunc; trim the
		// edges so 'love' matches the lexicon entry for love.
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// splitLines returns the trimmed, non-empty lines of text in input order.
// Newline-free input (a prose-shaped transcript) is optionally segmented
// into sentences so the line-based dimensions still see structure.
func splitLines(text string, segmentFallback bool) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if segmentFallback && len(lines) == 1 && len(lines[0]) > 0 {
		if segmented := segmentSentences(lines[0]); len(segmented) > 1 {
			return segmented
		}
	}
	return lines
}

var (
	punktOnce      sync.Once
	punktTokenizer *sentences.DefaultSentenceTokenizer
)

// segmentSentences splits a single block of prose into sentences using the
// Punkt model. Returns nil when the model is unavailable or the text does
// not segment, in which case the caller keeps the single-line view.
func segmentSentences(text string) []string {
	punktOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return
		}
		punktTokenizer = tok
	})
	if punktTokenizer == nil {
		return nil
	}

	var lines []string
	for _, sent := range punktTokenizer.Tokenize(text) {
		s := strings.TrimSpace(sent.Text)
		if s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) < 2 {
		return nil
	}
	return lines
}
