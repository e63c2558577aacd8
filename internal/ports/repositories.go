package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository defines the outbound port for the todo collection.
// Implemented by storage adapters; called by the application layer.
// Implementations must preserve insertion order across all operations and
// must be safe for concurrent use.
type TodoRepository interface {
	// Insert appends a todo to the collection.
	Insert(ctx context.Context, t *todo.Todo) error

	// Get returns a copy of the todo with the given ID.
	// Returns domain.ErrNotFound if no todo has that ID.
	Get(ctx context.Context, id uuid.UUID) (*todo.Todo, error)

	// List returns copies of the todos matching the filter, in insertion order.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Update applies mutate to the stored todo atomically and returns a copy
	// of the result. If mutate returns an error, the stored todo is left
	// unchanged and the error is returned as-is.
	// Returns domain.ErrNotFound if no todo has that ID.
	Update(ctx context.Context, id uuid.UUID, mutate func(*todo.Todo) error) (*todo.Todo, error)

	// Delete removes the todo with the given ID, preserving the order of
	// the remaining todos.
	// Returns domain.ErrNotFound if no todo has that ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
