package view_test

import (
	"testing"
	"time"

	"taskdesk/internal/task"
	"taskdesk/internal/view"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func mk(title, cat string, created time.Time) task.Task {
	return task.Task{ID: title, Title: title, Category: cat, CreatedAt: created}
}

func titles(rows []view.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Task.Title
	}
	return out
}

func TestApply(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	tasks := []task.Task{
		mk("write report", "Work", now),
		mk("buy milk", "Personal", yesterday),
		mk("call dentist", "Personal", now),
	}

	t.Run("no criteria returns everything in order", func(t *testing.T) {
		rows := view.Apply(tasks, view.Criteria{}, now)
		got := titles(rows)
		if len(got) != 3 || got[0] != "write report" || got[2] != "call dentist" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})

	t.Run("today matches creation date", func(t *testing.T) {
		rows := view.Apply(tasks, view.Criteria{Date: view.DateToday}, now)
		got := titles(rows)
		if len(got) != 2 || got[0] != "write report" || got[1] != "call dentist" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})

	t.Run("literal date matches exactly", func(t *testing.T) {
		rows := view.Apply(tasks, view.Criteria{Date: yesterday.Format(task.DateLayout)}, now)
		if got := titles(rows); len(got) != 1 || got[0] != "buy milk" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})

	t.Run("category All means no filtering", func(t *testing.T) {
		all := view.Apply(tasks, view.Criteria{Category: "All"}, now)
		none := view.Apply(tasks, view.Criteria{}, now)
		if len(all) != len(none) {
			t.Fatalf("All filtered rows: %d vs %d", len(all), len(none))
		}
	})

	t.Run("search is a case-insensitive substring", func(t *testing.T) {
		rows := view.Apply(tasks, view.Criteria{Search: "MILK"}, now)
		if got := titles(rows); len(got) != 1 || got[0] != "buy milk" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})

	t.Run("criteria compose with AND", func(t *testing.T) {
		rows := view.Apply(tasks, view.Criteria{
			Date:     view.DateToday,
			Category: "Personal",
			Search:   "dentist",
		}, now)
		if got := titles(rows); len(got) != 1 || got[0] != "call dentist" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})

	t.Run("today combines regardless of other filters", func(t *testing.T) {
		rows := view.Apply(tasks, view.Criteria{Date: view.DateToday, Category: "Work"}, now)
		if got := titles(rows); len(got) != 1 || got[0] != "write report" {
			t.Fatalf("unexpected rows: %v", got)
		}
	})

	t.Run("unknown creation time is excluded from date filters", func(t *testing.T) {
		broken := []task.Task{{ID: "x", Title: "no timestamp", Category: "Work"}}
		if rows := view.Apply(broken, view.Criteria{Date: view.DateToday}, now); len(rows) != 0 {
			t.Fatalf("zero-time task matched a date filter")
		}
		if rows := view.Apply(broken, view.Criteria{}, now); len(rows) != 1 {
			t.Fatalf("zero-time task dropped without a date filter")
		}
	})
}

func TestOverdue(t *testing.T) {
	t.Run("past due and open", func(t *testing.T) {
		tk := mk("late", "Work", now)
		tk.DueDate = "2024-03-01"
		rows := view.Apply([]task.Task{tk}, view.Criteria{}, now)
		if !rows[0].Overdue {
			t.Errorf("expected overdue")
		}
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		tk := mk("today", "Work", now)
		tk.DueDate = now.Format(task.DateLayout)
		rows := view.Apply([]task.Task{tk}, view.Criteria{}, now)
		if rows[0].Overdue {
			t.Errorf("due today must not be overdue")
		}
	})

	t.Run("completed tasks are never overdue", func(t *testing.T) {
		done := now
		tk := mk("finished", "Personal", now)
		tk.DueDate = "2024-01-01"
		tk.Completed = true
		tk.DoneAt = &done
		rows := view.Apply([]task.Task{tk}, view.Criteria{}, now)
		if rows[0].Overdue {
			t.Errorf("completed task flagged overdue")
		}
	})

	t.Run("no due date means never overdue", func(t *testing.T) {
		rows := view.Apply([]task.Task{mk("free", "Work", now)}, view.Criteria{}, now)
		if rows[0].Overdue {
			t.Errorf("task without due date flagged overdue")
		}
	})
}
