package domain

// Dim is the fixed dimensionality of every embedding and projection vector.
const Dim = 4

// Vector is a fixed-length embedding or projection.
type Vector [Dim]float64

// Document is a read-only entry of the reference knowledge base.
type Document struct {
	ID      int      `yaml:"id"`
	Title   string   `yaml:"title"`
	Content string   `yaml:"content"`
	Tags    []string `yaml:"tags"`
}

// RetrievalResult is a document scored against a single query.
type RetrievalResult struct {
	Document Document
	Score    float64
}

// Resolver maps a token to its embedding vector.
// Implementations must be pure: the same token always yields the same vector.
type Resolver interface {
	Resolve(token string) Vector
}

// DocumentStore exposes the knowledge base for retrieval.
type DocumentStore interface {
	Documents() []Document
}
