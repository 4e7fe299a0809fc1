package embedding

import (
	"strings"

	"aiforall/internal/domain"
)

// fallbackMultipliers derive the components of a vector for words missing from the dictionary.
var fallbackMultipliers = [domain.Dim]int{13, 31, 47, 61}

// Lexicon resolves tokens to 4-dimensional vectors. Known words come from a
// curated dictionary; anything else gets a vector derived from its characters.
// A Lexicon is immutable and safe for concurrent use.
type Lexicon struct {
	vectors map[string]domain.Vector
}

// NewLexicon creates a resolver backed by the built-in word dictionary.
func NewLexicon() *Lexicon {
	return &Lexicon{vectors: wordVectors}
}

// Name returns the identifier of this resolver implementation.
func (l *Lexicon) Name() string { return "lexicon" }

// Dimension returns the dimensionality of the produced vectors.
func (l *Lexicon) Dimension() int { return domain.Dim }

// Resolve returns the curated vector for token, or a deterministic derived one.
func (l *Lexicon) Resolve(token string) domain.Vector {
	w := Normalize(token)
	if v, ok := l.vectors[w]; ok {
		return v
	}
	return derive(w)
}

// Lookup reports the curated vector for token, if the dictionary has one.
func (l *Lexicon) Lookup(token string) (domain.Vector, bool) {
	v, ok := l.vectors[Normalize(token)]
	return v, ok
}

// Normalize lowercases token and drops everything outside a-z.
func Normalize(token string) string {
	lower := strings.ToLower(token)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		if c := lower[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func derive(w string) domain.Vector {
	seed := 0
	for i := 0; i < len(w); i++ {
		seed += int(w[i]) * (i + 1)
	}
	var v domain.Vector
	for d, k := range fallbackMultipliers {
		v[d] = float64((seed*k)%100) / 100
	}
	return v
}
