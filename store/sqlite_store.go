package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/sqlvec/vector"
)

// ErrZeroEmbedding is returned for embeddings whose elements are all zero;
// cosine distance is undefined for them.
var ErrZeroEmbedding = errors.New("store: zero-magnitude embedding")

// SQLiteStore implements Store on a SQLite database. Similarity search runs
// in SQL, so the vector functions must be registered (see
// engine.RegisterVectorFunctions) before the database is opened.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the base docs
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// AddDocuments inserts documents into the docs table. Documents without an
// ID get a random UUID.
func (s *SQLiteStore) AddDocuments(ctx context.Context, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO docs(id, content, meta, embedding) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		id := d.ID
		if id == "" {
			id = uuid.NewString()
		}
		emb, err := encodeEmbedding(d.Embedding)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", id, err)
		}
		if _, err := stmt.ExecContext(ctx, id, d.Content, d.Metadata, emb); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// SimilaritySearch returns up to k documents with an embedding of the same
// dimension as queryEmbedding, nearest first.
func (s *SQLiteStore) SimilaritySearch(ctx context.Context, queryEmbedding []float32, k int) ([]Document, error) {
	if k <= 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	q, err := encodeEmbedding(queryEmbedding)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("store: empty query embedding")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, content, meta, embedding, vector_distance_cos(embedding, ?1) AS distance
FROM docs
WHERE embedding IS NOT NULL AND length(embedding) = length(?1)
ORDER BY distance, id
LIMIT ?2`, q, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		var blob []byte
		if err := rows.Scan(&d.ID, &d.Content, &d.Metadata, &blob, &d.Distance); err != nil {
			return nil, err
		}
		vec, err := vector.DecodeBinary(blob)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", d.ID, err)
		}
		d.Embedding = vec.Float32s()
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a document by ID from the docs table.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: Remove called with empty id")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM docs WHERE id = ?`, id)
	return err
}

func encodeEmbedding(embedding []float32) ([]byte, error) {
	if len(embedding) == 0 {
		return nil, nil
	}
	zero := true
	for _, f := range embedding {
		if f != 0 {
			zero = false
			break
		}
	}
	if zero {
		return nil, ErrZeroEmbedding
	}
	return vector.New32(embedding...).EncodeBinary(), nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
