package retrieval

import (
	"math"
	"sort"

	"aiforall/internal/domain"
)

// DefaultTopK is used when a caller asks for zero or fewer results.
const DefaultTopK = 3

// Retriever ranks the documents of a store against a query by lexical overlap.
type Retriever struct {
	store domain.DocumentStore
}

// NewRetriever creates a retriever over store.
func NewRetriever(store domain.DocumentStore) *Retriever {
	return &Retriever{store: store}
}

// Documents returns the documents the retriever searches.
func (r *Retriever) Documents() []domain.Document { return r.store.Documents() }

// Retrieve scores every document against query, rounds scores to two
// decimals and returns the topK best. Equal scores keep store order.
func (r *Retriever) Retrieve(query string, topK int) []domain.RetrievalResult {
	return r.retrieve(Tokenize(query), topK)
}

func (r *Retriever) retrieve(queryTokens []string, topK int) []domain.RetrievalResult {
	docs := r.store.Documents()
	scored := make([]domain.RetrievalResult, len(docs))
	for i, d := range docs {
		score := Similarity(queryTokens, documentTokens(d))
		scored[i] = domain.RetrievalResult{Document: d, Score: math.Round(score*100) / 100}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK]
}

// documentTokens gathers tokens from content, title and tags, in that order.
func documentTokens(d domain.Document) []string {
	tokens := Tokenize(d.Content)
	tokens = append(tokens, Tokenize(d.Title)...)
	for _, tag := range d.Tags {
		tokens = append(tokens, Tokenize(tag)...)
	}
	return tokens
}
