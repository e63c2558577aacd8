// Package todo defines the Todo entity, its construction and mutation
// contract, and the list-filter and aggregation semantics over collections
// of todos. The validation rules are factored into stateless per-field
// predicates shared verbatim by the create and update paths.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

const (
	// MaxTitleLen is the maximum title length in characters, after trimming.
	MaxTitleLen = 200
	// MaxDescriptionLen is the maximum description length in characters.
	MaxDescriptionLen = 1000
	// forbiddenTitleChars are rejected in titles to keep stored text inert
	// when echoed into HTML or attribute contexts downstream.
	forbiddenTitleChars = `<>"'&`
)

// Todo represents a short text record with a completion flag and timestamps.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New validates title and description, and constructs a Todo with a fresh
// identifier, Completed=false, and both timestamps set to the current UTC
// time. Title and description are stored trimmed of surrounding whitespace.
// Returns a *domain.ValidationError wrapping domain.ErrValidation on any
// field failure.
func New(title, description string) (*Todo, error) {
	fields := make(map[string]string)

	if msg := validateTitle(title); msg != "" {
		fields["title"] = msg
	}
	if msg := validateDescription(description); msg != "" {
		fields["description"] = msg
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	return &Todo{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyUpdate mutates the todo with the provided fields. Nil means "leave
// unchanged". All present fields are validated before any mutation, so a
// failed update never leaves the entity partially modified. On success
// UpdatedAt is refreshed, even when the only change is to Completed.
func (t *Todo) ApplyUpdate(title, description *string, completed *bool) error {
	fields := make(map[string]string)

	if title != nil {
		if msg := validateTitle(*title); msg != "" {
			fields["title"] = msg
		}
	}
	if description != nil {
		if msg := validateDescription(*description); msg != "" {
			fields["description"] = msg
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	if title != nil {
		t.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		t.Description = strings.TrimSpace(*description)
	}
	if completed != nil {
		t.Completed = *completed
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Toggle flips the completion flag and refreshes UpdatedAt.
func (t *Todo) Toggle() {
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now().UTC()
}

// validateTitle checks the title rules: non-empty after trimming, at most
// MaxTitleLen characters post-trim, and free of forbidden characters.
// Returns an empty string when valid, otherwise the rule violated.
func validateTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return domain.MsgMustNotEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return fmt.Sprintf("must not exceed %d characters", MaxTitleLen)
	}
	if strings.ContainsAny(trimmed, forbiddenTitleChars) {
		return fmt.Sprintf("must not contain any of %s", forbiddenTitleChars)
	}
	return ""
}

// validateDescription checks the description length rule. An empty
// description is valid.
func validateDescription(description string) string {
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return fmt.Sprintf("must not exceed %d characters", MaxDescriptionLen)
	}
	return ""
}
