package lyrica

import "strings"

// suffixRule rewrites one word ending. Rules are evaluated in declaration
// order and the first applicable rewrite wins.
type suffixRule struct {
	suffix  string
	replace string
}

// suffixRules is a rule-chain reduction, not true morphological analysis:
// it exists to widen lexicon matches ("screaming" -> "scream"), so the
// occasional over- or under-stem is acceptable. Longer suffixes come first
// so "-ational" is handled before "-al" would be.
var suffixRules = []suffixRule{
	{"ational", "ate"},
	{"ization", "ize"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"iveness", "ive"},
	{"tional", "tion"},
	{"ingly", ""},
	{"edly", ""},
	{"ies", "y"},
	{"ing", ""},
	{"ed", ""},
	{"ly", ""},
	{"es", ""},
	{"s", ""},
}

// stem reduces a word to a crude root form. Words shorter than four
// characters pass through untouched, and a rewrite is only accepted if the
// result keeps at least two characters.
func stem(word string) string {
	if len(word) < 4 {
		return word
	}
	for _, rule := range suffixRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stemmed := word[:len(word)-len(rule.suffix)] + rule.replace
		if len(stemmed) >= 2 {
			return stemmed
		}
	}
	return word
}
