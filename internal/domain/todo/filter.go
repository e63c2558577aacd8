package todo

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Filter selects a subset of the collection when listing todos.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// ParseFilter converts a raw query token into a Filter. Matching is
// case-insensitive and an empty token defaults to FilterAll. Any other
// value returns a *domain.ValidationError on the "filter" field.
func ParseFilter(raw string) (Filter, error) {
	switch Filter(strings.ToLower(raw)) {
	case "":
		return FilterAll, nil
	case FilterAll:
		return FilterAll, nil
	case FilterCompleted:
		return FilterCompleted, nil
	case FilterPending:
		return FilterPending, nil
	default:
		return "", &domain.ValidationError{Fields: map[string]string{
			"filter": fmt.Sprintf("must be one of: %s, %s, %s; got %q",
				FilterAll, FilterCompleted, FilterPending, raw),
		}}
	}
}

// Matches reports whether the todo belongs to the subset this filter selects.
func (f Filter) Matches(t *Todo) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return string(f)
}
