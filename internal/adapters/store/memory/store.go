// Package memory provides the in-memory todo repository. The collection is
// an insertion-ordered slice guarded by a single RWMutex: one lock covers
// every read and write, so each operation is atomic and no partially-mutated
// state is ever observable. The store is constructed empty by the composition
// root and lives for the process lifetime; nothing is persisted.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Store is a thread-safe, insertion-ordered in-memory todo collection.
type Store struct {
	mu    sync.RWMutex
	todos []todo.Todo
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Insert appends a todo to the collection.
func (s *Store) Insert(_ context.Context, t *todo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = append(s.todos, *t)
	return nil
}

// Get returns a copy of the todo with the given ID, or domain.ErrNotFound.
func (s *Store) Get(_ context.Context, id uuid.UUID) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			t := s.todos[i]
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns copies of the todos matching the filter, in insertion order.
// The result is always non-nil, even for an empty collection.
func (s *Store) List(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]todo.Todo, 0, len(s.todos))
	for i := range s.todos {
		if filter.Matches(&s.todos[i]) {
			out = append(out, s.todos[i])
		}
	}
	return out, nil
}

// Update applies mutate to the stored todo under the write lock. The
// mutation runs against a scratch copy, so a failed mutate leaves the
// stored todo untouched.
func (s *Store) Update(_ context.Context, id uuid.UUID, mutate func(*todo.Todo) error) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		scratch := s.todos[i]
		if err := mutate(&scratch); err != nil {
			return nil, err
		}
		s.todos[i] = scratch
		result := scratch
		return &result, nil
	}
	return nil, domain.ErrNotFound
}

// Delete removes the todo with the given ID, preserving the order of the
// remaining todos.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Len returns the number of todos in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "todo-store"
}

// HealthCheck implements ports.HealthChecker. The in-memory store has no
// external resource that can fail; it reports healthy as long as the
// context is still live.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
