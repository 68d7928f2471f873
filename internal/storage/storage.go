// Package storage is the persistence gateway: it reads and writes the task
// and category files and knows nothing about the UI or filtering.
//
// Tasks live in a JSON array, categories in a {"categories": [...]} object.
// A missing file is a fresh start; a corrupt tasks file is surfaced as an
// error so startup can fail before the next save destroys user data. A
// corrupt categories file is recoverable, the caller falls back to defaults.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskdesk/internal/task"
)

// ErrCorrupt wraps decode failures of a persisted file.
var ErrCorrupt = errors.New("persisted file is corrupt")

// Store owns the on-disk locations. Single-process, single-writer.
type Store struct {
	tasksPath      string
	categoriesPath string
}

func New(dataDir, tasksFile, categoriesFile string) (*Store, error) {
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}
	return &Store{
		tasksPath:      filepath.Join(dataDir, tasksFile),
		categoriesPath: filepath.Join(dataDir, categoriesFile),
	}, nil
}

// taskRecord is the wire form of a task.
type taskRecord struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Completed bool    `json:"completed"`
	CreatedAt string  `json:"created_at"`
	DoneAt    *string `json:"done_at"`
	DueDate   *string `json:"due_date"`
}

type categoryRecord struct {
	Categories []string `json:"categories"`
}

// LoadTasks reads the task file. A missing file yields an empty collection;
// an unreadable or undecodable one is an error the caller must surface.
func (s *Store) LoadTasks() ([]task.Task, error) {
	data, err := os.ReadFile(s.tasksPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.tasksPath, err)
	}
	tasks := make([]task.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.toTask())
	}
	return tasks, nil
}

func (s *Store) SaveTasks(tasks []task.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.tasksPath, data)
}

// LoadCategories reads the category file. Both a missing file and a corrupt
// one are reported; the caller decides to seed defaults (and for the corrupt
// case, to log the loss).
func (s *Store) LoadCategories() ([]string, error) {
	data, err := os.ReadFile(s.categoriesPath)
	if err != nil {
		return nil, err
	}
	var rec categoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.categoriesPath, err)
	}
	return rec.Categories, nil
}

func (s *Store) SaveCategories(names []string) error {
	data, err := json.MarshalIndent(categoryRecord{Categories: names}, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.categoriesPath, data)
}

// writeFileAtomic writes to a sibling temp file and renames it over path,
// so an interrupted save cannot leave a truncated file behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func toRecord(t task.Task) taskRecord {
	rec := taskRecord{
		ID:        t.ID,
		Title:     t.Title,
		Category:  t.Category,
		Completed: t.Completed,
	}
	if !t.CreatedAt.IsZero() {
		rec.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	if t.DoneAt != nil {
		done := t.DoneAt.Format(time.RFC3339)
		rec.DoneAt = &done
	}
	if t.DueDate != "" {
		due := t.DueDate
		rec.DueDate = &due
	}
	return rec
}

func (rec taskRecord) toTask() task.Task {
	t := task.Task{
		ID:        rec.ID,
		Title:     rec.Title,
		Category:  rec.Category,
		Completed: rec.Completed,
	}
	// An unparsable created_at is kept as the zero time; the view filter
	// excludes such tasks from date filtering instead of failing the load.
	if parsed, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		t.CreatedAt = parsed
	}
	if rec.DoneAt != nil {
		if parsed, err := time.Parse(time.RFC3339, *rec.DoneAt); err == nil {
			t.DoneAt = &parsed
		}
	}
	if rec.DueDate != nil {
		t.DueDate = *rec.DueDate
	}
	return t
}
