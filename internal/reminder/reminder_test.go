package reminder_test

import (
	"testing"

	"taskdesk/internal/reminder"
	"taskdesk/internal/task"
)

func TestDue(t *testing.T) {
	today := "2024-03-15"
	tasks := []task.Task{
		{ID: "late", Title: "late", DueDate: "2024-03-01"},
		{ID: "today", Title: "today", DueDate: today},
		{ID: "future", Title: "future", DueDate: "2024-04-01"},
		{ID: "done", Title: "done", DueDate: "2024-03-01", Completed: true},
		{ID: "none", Title: "none"},
	}

	c := reminder.NewChecker()

	t.Run("past and today are due, completed and future are not", func(t *testing.T) {
		due := c.Due(tasks, today)
		if len(due) != 2 || due[0].ID != "late" || due[1].ID != "today" {
			t.Fatalf("unexpected due set: %+v", due)
		}
	})

	t.Run("each task is announced once per process", func(t *testing.T) {
		if due := c.Due(tasks, today); len(due) != 0 {
			t.Fatalf("tasks announced twice: %+v", due)
		}
	})

	t.Run("a fresh checker announces again", func(t *testing.T) {
		if due := reminder.NewChecker().Due(tasks, today); len(due) != 2 {
			t.Fatalf("restart should reset the notified set, got %+v", due)
		}
	})
}
