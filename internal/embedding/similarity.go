package embedding

import (
	"math"
	"sort"

	"aiforall/internal/domain"
)

// Neighbor is a dictionary word scored by cosine similarity.
type Neighbor struct {
	Word       string
	Similarity float64
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0 when
// either vector has zero magnitude.
func CosineSimilarity(a, b domain.Vector) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// Nearest returns up to k dictionary words closest to token, excluding the
// token itself. Unknown tokens are compared through their derived vector.
func (l *Lexicon) Nearest(token string, k int) []Neighbor {
	if k <= 0 {
		return nil
	}
	self := Normalize(token)
	target := l.Resolve(token)
	out := make([]Neighbor, 0, len(l.vectors))
	for _, w := range l.Words() {
		if w == self {
			continue
		}
		out = append(out, Neighbor{Word: w, Similarity: CosineSimilarity(target, l.vectors[w])})
	}
	// Words() is sorted, so ties stay alphabetical.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if k > len(out) {
		k = len(out)
	}
	return out[:k]
}
