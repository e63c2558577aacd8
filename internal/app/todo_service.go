// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the repository through port
// interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService over the todo repository.
// Validation lives in the domain entity; this layer handles orchestration
// and structured logging. Every operation is a fast, synchronous, in-memory
// computation; no operation blocks or leaves partial state behind.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService backed by the given repository.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the todos matching the filter, in insertion order.
func (s *TodoService) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.String("filter", filter.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "listed todos",
		slog.String("filter", filter.String()),
		slog.Int("count", len(todos)),
	)
	return todos, nil
}

// Create validates and stores a new todo.
func (s *TodoService) Create(ctx context.Context, title, description string) (*todo.Todo, error) {
	t, err := todo.New(title, description)
	if err != nil {
		s.logger.WarnContext(ctx, "todo rejected by validation",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.repo.Insert(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert todo",
			slog.String("operation", "Create"),
			slog.String("todo_id", t.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "created todo", slog.String("todo_id", t.ID.String()))
	return t, nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "todo not found",
			slog.String("operation", "Get"),
			slog.String("todo_id", id.String()),
		)
		return nil, err
	}
	return t, nil
}

// Update applies a partial update. Validation of the present fields happens
// inside the repository's atomic mutate, so a rejected update never leaves
// the stored entity partially modified.
func (s *TodoService) Update(ctx context.Context, id uuid.UUID, update ports.TodoUpdate) (*todo.Todo, error) {
	t, err := s.repo.Update(ctx, id, func(t *todo.Todo) error {
		return t.ApplyUpdate(update.Title, update.Description, update.Completed)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to update todo",
			slog.String("operation", "Update"),
			slog.String("todo_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "updated todo", slog.String("todo_id", id.String()))
	return t, nil
}

// Delete removes a todo from the collection.
func (s *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.String("todo_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "deleted todo", slog.String("todo_id", id.String()))
	return nil
}

// Toggle flips a todo's completion flag.
func (s *TodoService) Toggle(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	t, err := s.repo.Update(ctx, id, func(t *todo.Todo) error {
		t.Toggle()
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to toggle todo",
			slog.String("operation", "Toggle"),
			slog.String("todo_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "toggled todo",
		slog.String("todo_id", id.String()),
		slog.Bool("completed", t.Completed),
	)
	return t, nil
}

// Stats returns aggregate statistics over the whole collection.
func (s *TodoService) Stats(ctx context.Context) (todo.Stats, error) {
	todos, err := s.repo.List(ctx, todo.FilterAll)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compute stats",
			slog.String("operation", "Stats"),
			slog.Any("error", err),
		)
		return todo.Stats{}, err
	}

	stats := todo.ComputeStats(todos, time.Now())
	s.logger.InfoContext(ctx, "computed stats",
		slog.Int("total", stats.Total),
		slog.Int("completed", stats.Completed),
	)
	return stats, nil
}
