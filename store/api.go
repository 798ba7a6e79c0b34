package store

import (
	"context"
)

// Document represents a logical document stored in the vector store.
type Document struct {
	// ID is the logical identifier of the document.
	ID string

	// Content holds the main text/body of the document.
	Content string

	// Metadata is an opaque JSON or structured payload associated with the
	// document.
	Metadata string

	// Embedding is the vector representation of the document content. It is
	// stored as a float32 vector BLOB; documents without one are never
	// returned by SimilaritySearch.
	Embedding []float32

	// Distance is the cosine distance to the query; only set on documents
	// returned by SimilaritySearch.
	Distance float64
}

// Store defines the application-level vector store API.
type Store interface {
	// AddDocuments inserts documents into the store and returns their IDs.
	AddDocuments(ctx context.Context, docs []Document) ([]string, error)

	// SimilaritySearch returns up to k documents ordered by ascending cosine
	// distance to queryEmbedding.
	SimilaritySearch(ctx context.Context, queryEmbedding []float32, k int) ([]Document, error)

	// Remove deletes the document with the given ID.
	Remove(ctx context.Context, id string) error
}
