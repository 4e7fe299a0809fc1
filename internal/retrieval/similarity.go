package retrieval

import "strings"

// Similarity returns the fraction of query tokens that overlap some document
// token, where two tokens overlap when either contains the other. Each query
// token counts at most once. An empty query scores 0.
func Similarity(queryTokens, docTokens []string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	docSet := unique(docTokens)
	matches := 0
	for _, q := range queryTokens {
		for _, d := range docSet {
			if strings.Contains(d, q) || strings.Contains(q, d) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(queryTokens))
}

func unique(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
