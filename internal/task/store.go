package task

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle = errors.New("task title is empty")
	ErrBadDueDate = errors.New("due date is not a YYYY-MM-DD date")
)

// Store holds the in-memory task collection in insertion order. It knows
// nothing about persistence or display; callers save and filter around it.
type Store struct {
	tasks []Task
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Replace swaps the whole collection, used when loading persisted state.
func (s *Store) Replace(tasks []Task) {
	s.tasks = append([]Task(nil), tasks...)
}

// Add appends a new task. The title must be non-blank and the due date,
// when given, a valid calendar date.
func (s *Store) Add(title, category, due string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	due = strings.TrimSpace(due)
	if due != "" {
		if _, err := time.Parse(DateLayout, due); err != nil {
			return Task{}, ErrBadDueDate
		}
	}
	t := newTask(title, category, due, s.now())
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// MarkDone completes the task with the given id. Unknown or already
// completed tasks are left untouched, so repeated calls keep the original
// completion timestamp.
func (s *Store) MarkDone(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID != id || s.tasks[i].Completed {
			continue
		}
		done := s.now()
		s.tasks[i].Completed = true
		s.tasks[i].DoneAt = &done
		return
	}
}

// Changes is a partial update for Edit; nil fields are left as they are.
type Changes struct {
	Title     *string
	Category  *string
	Completed *bool
	DueDate   *string
}

// Edit applies the provided fields to the task with the given id.
// Completing a task stamps DoneAt; reopening clears it. Validation happens
// before anything is written, so a rejected edit leaves the task untouched.
func (s *Store) Edit(id string, ch Changes) (Task, error) {
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Task{}, errors.New("task not found: " + id)
	}

	var title, due string
	if ch.Title != nil {
		title = strings.TrimSpace(*ch.Title)
		if title == "" {
			return Task{}, ErrEmptyTitle
		}
	}
	if ch.DueDate != nil {
		due = strings.TrimSpace(*ch.DueDate)
		if due != "" {
			if _, err := time.Parse(DateLayout, due); err != nil {
				return Task{}, ErrBadDueDate
			}
		}
	}

	t := &s.tasks[idx]
	if ch.Title != nil {
		t.Title = title
	}
	if ch.Category != nil {
		t.Category = *ch.Category
	}
	if ch.DueDate != nil {
		t.DueDate = due
	}
	if ch.Completed != nil && *ch.Completed != t.Completed {
		if *ch.Completed {
			done := s.now()
			t.Completed = true
			t.DoneAt = &done
		} else {
			t.Completed = false
			t.DoneAt = nil
		}
	}
	return *t, nil
}

// Get returns the task with the given id, if present.
func (s *Store) Get(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []Task {
	return append([]Task(nil), s.tasks...)
}

// ReplaceCategory moves every task in category from to category to and
// reports how many were touched. Used by category rename and delete cascades.
func (s *Store) ReplaceCategory(from, to string) int {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Category == from {
			s.tasks[i].Category = to
			n++
		}
	}
	return n
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.tasks = nil
}

// Stats counts completion state over the whole collection.
func (s *Store) Stats() Stats {
	return Tally(s.tasks)
}
