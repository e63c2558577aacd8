package dto

import "github.com/jsamuelsen11/todo-service/internal/ports"

// CreateTodoRequest represents the JSON body for creating a new todo.
// Field rules (required title, length limits, forbidden characters) are
// enforced by the domain entity so that the create and update paths share
// the same predicates and cannot drift apart.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTodoRequest represents the JSON body for a partial update.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ToTodoUpdate converts the request DTO to the service port's update value.
func (r *UpdateTodoRequest) ToTodoUpdate() ports.TodoUpdate {
	return ports.TodoUpdate{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}
