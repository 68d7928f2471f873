// Package reminder finds tasks whose due date has arrived. Each task is
// announced at most once per process; the notified set is not persisted, so
// reminders fire again after a restart.
package reminder

import (
	"taskdesk/internal/task"
)

type Checker struct {
	notified map[string]struct{}
}

func NewChecker() *Checker {
	return &Checker{notified: make(map[string]struct{})}
}

// Due returns the not-yet-announced open tasks with a due date on or before
// today (a DateLayout date) and marks them announced.
func (c *Checker) Due(tasks []task.Task, today string) []task.Task {
	var due []task.Task
	for _, t := range tasks {
		if t.Completed || t.DueDate == "" || t.DueDate > today {
			continue
		}
		if _, seen := c.notified[t.ID]; seen {
			continue
		}
		c.notified[t.ID] = struct{}{}
		due = append(due, t)
	}
	return due
}
