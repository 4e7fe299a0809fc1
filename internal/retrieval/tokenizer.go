package retrieval

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minTokenLen is the shortest token kept, exclusive.
const minTokenLen = 2

// Everything that is not a word character, a space, or a Portuguese accented
// vowel or cedilla gets stripped.
var stripRe = regexp.MustCompile(`[^\w\s\v\p{Z}àáâãéêíóôõúç]`)

// Tokenize lowercases text, strips punctuation and returns the distinct
// tokens longer than two characters in first-seen order.
func Tokenize(text string) []string {
	cleaned := stripRe.ReplaceAllString(strings.ToLower(text), "")
	fields := strings.Fields(cleaned)
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= minTokenLen {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
