// Package view derives the displayed task list from the full collection.
// It owns no state: Apply is a pure function over a store snapshot.
package view

import (
	"strings"
	"time"

	"taskdesk/internal/category"
	"taskdesk/internal/task"
)

// DateToday is the sentinel for "tasks created today"; any other non-empty
// Date value is matched literally against the creation date.
const DateToday = "today"

// Criteria are the three optional filters, combined with AND. Zero values
// mean "no filtering" for each field; Category "All" likewise.
type Criteria struct {
	Date     string
	Category string
	Search   string
}

// Row is one displayable task. Overdue is true when the task has a due date
// in the past and is not completed; completed tasks are never overdue.
type Row struct {
	Task    task.Task
	Overdue bool
}

// Apply filters tasks by the criteria, preserving store order. Tasks whose
// creation timestamp is unknown (zero) are excluded from date-filtered
// results rather than treated as a match.
func Apply(tasks []task.Task, c Criteria, now time.Time) []Row {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	today := now.Format(task.DateLayout)

	wantDate := c.Date
	if wantDate == DateToday {
		wantDate = today
	}

	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		if wantDate != "" {
			if t.CreatedAt.IsZero() || t.CreatedAt.Format(task.DateLayout) != wantDate {
				continue
			}
		}
		if c.Category != "" && c.Category != category.Reserved && t.Category != c.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		rows = append(rows, Row{
			Task:    t,
			Overdue: t.DueDate != "" && !t.Completed && today > t.DueDate,
		})
	}
	return rows
}

// Tasks strips the rows back to their tasks, in row order.
func Tasks(rows []Row) []task.Task {
	out := make([]task.Task, len(rows))
	for i, r := range rows {
		out[i] = r.Task
	}
	return out
}
