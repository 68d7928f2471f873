package task

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date form used for due dates.
const DateLayout = "2006-01-02"

// Task is a single to-do item. DoneAt is set exactly while Completed is true.
// DueDate is a calendar date in DateLayout, empty when the task has none.
type Task struct {
	ID        string
	Title     string
	Category  string
	Completed bool
	CreatedAt time.Time
	DoneAt    *time.Time
	DueDate   string
}

func newTask(title, category, due string, now time.Time) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		CreatedAt: now,
		DueDate:   due,
	}
}

// Stats are completion counts over a set of tasks.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// Tally counts completion state over any task slice, filtered or not.
func Tally(tasks []Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}
