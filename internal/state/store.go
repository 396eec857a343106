package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/logger"
	"github.com/nhb-tools/sitedesk/internal/repository"
)

// Store owns the in-memory domain state and its persistence gateway.
// All mutations funnel through Mutate, which flushes every collection to
// the blob repo before returning, so memory and store never diverge past
// the current operation.
//
// The app is logically single-writer, but TUI views load data from
// bubbletea commands running on their own goroutines, hence the lock.
type Store struct {
	mu   sync.RWMutex
	data Data
	repo repository.BlobRepo
}

// NewStore creates a Store over the given blob repo. Call Load before use.
func NewStore(repo repository.BlobRepo) *Store {
	return &Store{repo: repo}
}

// Load reads the three collections from the store adapter. An absent or
// unparseable blob yields an empty collection for that key; Load only fails
// when the adapter itself does.
func (s *Store) Load(ctx context.Context) error {
	var d Data
	if err := loadCollection(ctx, s.repo, KeyProjects, &d.Projects); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, KeyExpenses, &d.Expenses); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, KeyTasks, &d.Tasks); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
	return nil
}

func loadCollection[T any](ctx context.Context, repo repository.BlobRepo, key string, out *[]T) error {
	blob, ok, err := repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		*out = []T{}
		return nil
	}
	if err := json.Unmarshal([]byte(blob), out); err != nil {
		logger.L.WithField("key", key).WithError(err).Warn("unparseable blob, starting collection empty")
		*out = []T{}
		return nil
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Mutate applies fn to the state and flushes all three collections.
// If fn returns an error the state is left untouched and nothing is written.
func (s *Store) Mutate(ctx context.Context, fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.flush(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Replace swaps in a whole new state (restore-from-backup) and persists it.
func (s *Store) Replace(ctx context.Context, d Data) error {
	return s.Mutate(ctx, func(cur *Data) error {
		*cur = d.Clone()
		return nil
	})
}

func (s *Store) flush(ctx context.Context, d Data) error {
	if err := saveCollection(ctx, s.repo, KeyProjects, d.Projects); err != nil {
		return err
	}
	if err := saveCollection(ctx, s.repo, KeyExpenses, d.Expenses); err != nil {
		return err
	}
	return saveCollection(ctx, s.repo, KeyTasks, d.Tasks)
}

func saveCollection[T any](ctx context.Context, repo repository.BlobRepo, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", key, err)
	}
	if err := repo.Set(ctx, key, string(blob)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Projects returns a copy of the project collection in insertion order.
func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.data.Projects))
	copy(out, s.data.Projects)
	return out
}

// Expenses returns a copy of the expense collection in insertion order.
func (s *Store) Expenses() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Expense, len(s.data.Expenses))
	copy(out, s.data.Expenses)
	return out
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.data.Tasks))
	copy(out, s.data.Tasks)
	return out
}
