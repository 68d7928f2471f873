package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskdesk/internal/storage"
	"taskdesk/internal/task"
)

func newStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.New(dir, "tasks.json", "categories.json")
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	return s, dir
}

func TestLoadTasks(t *testing.T) {
	t.Run("missing file is an empty collection", func(t *testing.T) {
		s, _ := newStore(t)
		tasks, err := s.LoadTasks()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 0 {
			t.Fatalf("expected no tasks, got %d", len(tasks))
		}
	})

	t.Run("corrupt file is surfaced", func(t *testing.T) {
		s, dir := newStore(t)
		if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := s.LoadTasks(); !errors.Is(err, storage.ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt, got %v", err)
		}
	})

	t.Run("unparsable created_at keeps the task with zero time", func(t *testing.T) {
		s, dir := newStore(t)
		raw := `[{"id":"1","title":"t","category":"Work","completed":false,"created_at":"garbage","done_at":null,"due_date":null}]`
		if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
		tasks, err := s.LoadTasks()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 || !tasks[0].CreatedAt.IsZero() {
			t.Fatalf("unexpected load: %+v", tasks)
		}
	})
}

func TestTaskRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	created := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	done := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	original := []task.Task{
		{
			ID:        "a1",
			Title:     "buy milk",
			Category:  "Personal",
			Completed: true,
			CreatedAt: created,
			DoneAt:    &done,
			DueDate:   "2024-01-01",
		},
		{
			ID:        "b2",
			Title:     "write report",
			Category:  "Work",
			CreatedAt: created.Add(time.Hour),
		},
	}

	if err := s.SaveTasks(original); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}
	loaded, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks: %v", err)
	}
	if len(loaded) != len(original) {
		t.Fatalf("expected %d tasks, got %d", len(original), len(loaded))
	}
	for i := range original {
		want, got := original[i], loaded[i]
		if got.ID != want.ID || got.Title != want.Title || got.Category != want.Category ||
			got.Completed != want.Completed || got.DueDate != want.DueDate {
			t.Errorf("task %d mismatch: got %+v want %+v", i, got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("task %d created_at mismatch: %v vs %v", i, got.CreatedAt, want.CreatedAt)
		}
		if (got.DoneAt == nil) != (want.DoneAt == nil) {
			t.Errorf("task %d done_at presence mismatch", i)
		} else if got.DoneAt != nil && !got.DoneAt.Equal(*want.DoneAt) {
			t.Errorf("task %d done_at mismatch: %v vs %v", i, got.DoneAt, want.DoneAt)
		}
	}
}

func TestSaveReplacesFileCleanly(t *testing.T) {
	s, dir := newStore(t)
	first := []task.Task{{ID: "a", Title: "one", CreatedAt: time.Now()}}
	second := []task.Task{{ID: "b", Title: "two", CreatedAt: time.Now()}}

	if err := s.SaveTasks(first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveTasks(second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "b" {
		t.Fatalf("old contents survived: %+v", loaded)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "tasks.json" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestCategories(t *testing.T) {
	t.Run("missing file reports not-exist", func(t *testing.T) {
		s, _ := newStore(t)
		if _, err := s.LoadCategories(); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("corrupt file reports ErrCorrupt", func(t *testing.T) {
		s, dir := newStore(t)
		if err := os.WriteFile(filepath.Join(dir, "categories.json"), []byte("nope"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := s.LoadCategories(); !errors.Is(err, storage.ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt, got %v", err)
		}
	})

	t.Run("round-trips the name list", func(t *testing.T) {
		s, _ := newStore(t)
		want := []string{"Personal", "School", "Work"}
		if err := s.SaveCategories(want); err != nil {
			t.Fatalf("SaveCategories: %v", err)
		}
		got, err := s.LoadCategories()
		if err != nil {
			t.Fatalf("LoadCategories: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})
}
