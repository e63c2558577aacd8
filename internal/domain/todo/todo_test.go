package todo_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	got, err := todo.New("  Buy milk  ", "  2 liters, whole  ")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got.Title != "Buy milk" {
		t.Errorf("Title = %q, want trimmed %q", got.Title, "Buy milk")
	}
	if got.Description != "2 liters, whole" {
		t.Errorf("Description = %q, want trimmed %q", got.Description, "2 liters, whole")
	}
	if got.Completed {
		t.Error("Completed = true, want false on creation")
	}
	if got.ID == uuid.Nil {
		t.Error("ID = uuid.Nil, want a fresh identifier")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set on creation")
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
	if loc := got.CreatedAt.Location(); loc != nil && loc.String() != "UTC" {
		t.Errorf("CreatedAt location = %v, want UTC", loc)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	t.Parallel()

	a, err := todo.New("first", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	b, err := todo.New("second", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("two todos share ID %s", a.ID)
	}
}

func TestNew_TitleValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "empty", title: "", wantErr: true},
		{name: "whitespace only", title: "   \t\n ", wantErr: true},
		{name: "exactly 200 chars", title: strings.Repeat("a", 200), wantErr: false},
		{name: "201 chars", title: strings.Repeat("a", 201), wantErr: true},
		{name: "200 chars after trim", title: "  " + strings.Repeat("a", 200) + "  ", wantErr: false},
		{name: "less-than sign", title: "a<b", wantErr: true},
		{name: "greater-than sign", title: "a>b", wantErr: true},
		{name: "double quote", title: `say "hi"`, wantErr: true},
		{name: "single quote", title: "it's fine?", wantErr: true},
		{name: "ampersand", title: "this & that", wantErr: true},
		{name: "plain text", title: "Buy groceries", wantErr: false},
		{name: "unicode within limit", title: strings.Repeat("ü", 200), wantErr: false},
		{name: "unicode over limit", title: strings.Repeat("ü", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := todo.New(tt.title, "")
			if tt.wantErr {
				requireValidationField(t, err, "title")
			} else if err != nil {
				t.Errorf("New(%q) error: %v, want nil", tt.title, err)
			}
		})
	}
}

func TestNew_DescriptionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{name: "empty is fine", description: "", wantErr: false},
		{name: "exactly 1000 chars", description: strings.Repeat("d", 1000), wantErr: false},
		{name: "1001 chars", description: strings.Repeat("d", 1001), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := todo.New("valid title", tt.description)
			if tt.wantErr {
				requireValidationField(t, err, "description")
			} else if err != nil {
				t.Errorf("New() error: %v, want nil", err)
			}
		})
	}
}

func TestApplyUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	td, err := todo.New("original title", "original description")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := td.ApplyUpdate(strPtr("  new title  "), nil, nil); err != nil {
		t.Fatalf("ApplyUpdate() error: %v", err)
	}
	if td.Title != "new title" {
		t.Errorf("Title = %q, want %q", td.Title, "new title")
	}
	if td.Description != "original description" {
		t.Errorf("Description = %q, want untouched original", td.Description)
	}
	if td.Completed {
		t.Error("Completed flipped by title-only update")
	}

	if err := td.ApplyUpdate(nil, nil, boolPtr(true)); err != nil {
		t.Fatalf("ApplyUpdate() error: %v", err)
	}
	if !td.Completed {
		t.Error("Completed = false, want true after update")
	}
	if td.Title != "new title" {
		t.Errorf("Title = %q, changed by completed-only update", td.Title)
	}
}

func TestApplyUpdate_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	td, err := todo.New("title", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	before := td.UpdatedAt
	if err := td.ApplyUpdate(nil, nil, boolPtr(true)); err != nil {
		t.Fatalf("ApplyUpdate() error: %v", err)
	}
	if td.UpdatedAt.Before(before) {
		t.Errorf("UpdatedAt = %v, want >= %v", td.UpdatedAt, before)
	}
	if td.UpdatedAt.Before(td.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", td.UpdatedAt, td.CreatedAt)
	}
}

func TestApplyUpdate_NoMutationOnFailure(t *testing.T) {
	t.Parallel()

	td, err := todo.New("keep me", "keep me too")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	snapshot := *td

	// A valid completed flag paired with an invalid title must not apply
	// either change.
	err = td.ApplyUpdate(strPtr("bad<title"), nil, boolPtr(true))
	requireValidationField(t, err, "title")

	if *td != snapshot {
		t.Errorf("todo mutated on failed update: %+v, want %+v", *td, snapshot)
	}
}

func TestApplyUpdate_SharedRulesWithCreate(t *testing.T) {
	t.Parallel()

	td, err := todo.New("valid", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name  string
		title string
	}{
		{name: "whitespace only", title: "   "},
		{name: "over 200 chars", title: strings.Repeat("x", 201)},
		{name: "forbidden char", title: "a&b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := td.ApplyUpdate(strPtr(tt.title), nil, nil)
			requireValidationField(t, err, "title")
		})
	}
}

func TestToggle_Involution(t *testing.T) {
	t.Parallel()

	td, err := todo.New("toggle me", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	first := td.UpdatedAt

	td.Toggle()
	if !td.Completed {
		t.Error("Completed = false after first toggle, want true")
	}
	second := td.UpdatedAt
	if second.Before(first) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", first, second)
	}

	td.Toggle()
	if td.Completed {
		t.Error("Completed = true after second toggle, want original false")
	}
	if td.UpdatedAt.Before(second) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", second, td.UpdatedAt)
	}
}
