package sqlite

import (
	"context"
	"sync"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
)

// Ensure LazyRunStore implements the interface.
var _ driven.RunStore = (*LazyRunStore)(nil)

// LazyRunStore opens the history database on first use.
// Commands that never touch history do not create it.
type LazyRunStore struct {
	dataDir string

	mu    sync.Mutex
	store *Store
	runs  driven.RunStore
}

// NewLazyRunStore creates a run store for dataDir; see NewStore for the default.
func NewLazyRunStore(dataDir string) *LazyRunStore {
	return &LazyRunStore{dataDir: dataDir}
}

// Save stores a run, opening the database if needed.
func (l *LazyRunStore) Save(ctx context.Context, run *domain.AlignmentRun) error {
	runs, err := l.open()
	if err != nil {
		return err
	}
	return runs.Save(ctx, run)
}

// Get retrieves a run by ID.
func (l *LazyRunStore) Get(ctx context.Context, id string) (*domain.AlignmentRun, error) {
	runs, err := l.open()
	if err != nil {
		return nil, err
	}
	return runs.Get(ctx, id)
}

// List returns runs newest first.
func (l *LazyRunStore) List(ctx context.Context, limit int) ([]domain.AlignmentRun, error) {
	runs, err := l.open()
	if err != nil {
		return nil, err
	}
	return runs.List(ctx, limit)
}

// Delete removes a run and its outcomes.
func (l *LazyRunStore) Delete(ctx context.Context, id string) error {
	runs, err := l.open()
	if err != nil {
		return err
	}
	return runs.Delete(ctx, id)
}

// Opened reports whether the database has been opened.
func (l *LazyRunStore) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store != nil
}

// Close closes the database if it was opened.
func (l *LazyRunStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store, l.runs = nil, nil
	return err
}

func (l *LazyRunStore) open() (driven.RunStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.runs != nil {
		return l.runs, nil
	}
	store, err := NewStore(l.dataDir)
	if err != nil {
		return nil, err
	}
	l.store, l.runs = store, store.RunStore()
	return l.runs, nil
}
