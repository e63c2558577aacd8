package todo

import (
	"math"
	"time"
)

// Stats holds aggregate statistics over a collection of todos.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
	CreatedToday   int
}

// ComputeStats aggregates the given todos. CompletionRate is the percentage
// of completed todos rounded to two decimal places, defined as exactly 0
// when the collection is empty. CreatedToday counts todos whose CreatedAt
// falls on the same UTC calendar day as now.
func ComputeStats(todos []Todo, now time.Time) Stats {
	s := Stats{Total: len(todos)}

	today := now.UTC()
	ty, tm, td := today.Date()

	for i := range todos {
		if todos[i].Completed {
			s.Completed++
		}
		cy, cm, cd := todos[i].CreatedAt.UTC().Date()
		if cy == ty && cm == tm && cd == td {
			s.CreatedToday++
		}
	}

	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = roundRate(float64(s.Completed) / float64(s.Total) * 100)
	}
	return s
}

// roundRate rounds to two decimal places.
func roundRate(v float64) float64 {
	return math.Round(v*100) / 100
}
