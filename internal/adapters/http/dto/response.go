// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
// Timestamps are rendered as RFC 3339 UTC strings.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// TodoListResponse represents a filtered listing in HTTP responses. Count is
// the number of todos returned; Total is the size of the whole collection
// regardless of filter.
type TodoListResponse struct {
	Todos  []TodoResponse `json:"todos"`
	Count  int            `json:"count"`
	Filter string         `json:"filter"`
	Total  int            `json:"total"`
}

// ToTodoListResponse converts a filtered slice of todos to an HTTP list
// response DTO.
func ToTodoListResponse(todos []todo.Todo, filter todo.Filter, total int) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos:  items,
		Count:  len(items),
		Filter: filter.String(),
		Total:  total,
	}
}

// ToggleTodoResponse represents the result of a toggle operation, carrying a
// human-readable message alongside the updated todo.
type ToggleTodoResponse struct {
	Message string       `json:"message"`
	Todo    TodoResponse `json:"todo"`
}

// ToToggleTodoResponse converts a toggled todo to an HTTP response DTO.
// The message reflects the state the todo was toggled into.
func ToToggleTodoResponse(t *todo.Todo) ToggleTodoResponse {
	msg := "Todo marked as pending"
	if t.Completed {
		msg = "Todo marked as completed"
	}
	return ToggleTodoResponse{
		Message: msg,
		Todo:    ToTodoResponse(t),
	}
}

// DeleteTodoResponse confirms a successful deletion.
type DeleteTodoResponse struct {
	Message string `json:"message"`
}

// NewDeleteTodoResponse returns the standard deletion confirmation.
func NewDeleteTodoResponse() DeleteTodoResponse {
	return DeleteTodoResponse{Message: "Todo deleted successfully"}
}

// StatsResponse represents aggregate collection statistics in HTTP responses.
type StatsResponse struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
	CreatedToday   int     `json:"created_today"`
}

// ToStatsResponse converts domain stats to an HTTP response DTO.
func ToStatsResponse(s todo.Stats) StatsResponse {
	return StatsResponse{
		Total:          s.Total,
		Completed:      s.Completed,
		Pending:        s.Pending,
		CompletionRate: s.CompletionRate,
		CreatedToday:   s.CreatedToday,
	}
}
