package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoUpdate carries the optional fields of a partial update. Nil means
// "leave unchanged"; presence is explicit so no runtime type inspection is
// needed anywhere downstream.
type TodoUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// List returns the todos matching the filter, in insertion order.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Create validates and stores a new todo, returning the created entity
	// with server-assigned ID and timestamps.
	// Returns domain.ErrValidation if a field fails validation.
	Create(ctx context.Context, title, description string) (*todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if no todo has that ID.
	Get(ctx context.Context, id uuid.UUID) (*todo.Todo, error)

	// Update applies a partial update and returns the updated entity.
	// Returns domain.ErrNotFound if no todo has that ID and
	// domain.ErrValidation if any present field fails validation.
	Update(ctx context.Context, id uuid.UUID, update TodoUpdate) (*todo.Todo, error)

	// Delete removes a todo, preserving the order of the remainder.
	// Returns domain.ErrNotFound if no todo has that ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Toggle flips a todo's completion flag and returns the updated entity.
	// Returns domain.ErrNotFound if no todo has that ID.
	Toggle(ctx context.Context, id uuid.UUID) (*todo.Todo, error)

	// Stats returns aggregate statistics over the whole collection.
	// An empty collection yields all-zero stats, never an error.
	Stats(ctx context.Context) (todo.Stats, error)
}
