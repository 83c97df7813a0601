package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound means the record does not exist in its collection.
	ErrNotFound = errors.New("record not found")
	// ErrQuantityConflict means a conditional stock update lost against a
	// concurrent writer; the caller should fail the operation rather than
	// retry blindly.
	ErrQuantityConflict = errors.New("stock quantity changed concurrently")
)

// Store groups the per-collection repositories over one database handle.
type Store struct {
	ext sqlx.ExtContext
}

func New(db *sqlx.DB) *Store {
	return &Store{ext: db}
}

// WithTx runs fn against a Store bound to a single transaction, committing
// when fn returns nil and rolling back otherwise. Calling WithTx on a Store
// that is already transactional just runs fn.
func (s *Store) WithTx(ctx context.Context, fn func(*Store) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return fn(s)
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&Store{ext: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
