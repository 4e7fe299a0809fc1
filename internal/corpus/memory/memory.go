package memory

import (
	"aiforall/internal/corpus"
	"aiforall/internal/domain"
)

// Storage is an immutable in-memory document store. Documents keep the order
// they were given in, which retrieval relies on to break score ties.
type Storage struct {
	docs []domain.Document
}

// NewStorage copies docs into a new store.
func NewStorage(docs []domain.Document) *Storage {
	return &Storage{docs: corpus.Clone(docs)}
}

// NewReferenceStorage returns a store over the built-in knowledge base.
func NewReferenceStorage() *Storage {
	return &Storage{docs: corpus.Reference()}
}

// Documents returns a copy of the stored documents in insertion order.
func (s *Storage) Documents() []domain.Document {
	return corpus.Clone(s.docs)
}

// Len returns the number of stored documents.
func (s *Storage) Len() int { return len(s.docs) }
