// Package export writes the task collection to CSV.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"time"

	"taskdesk/internal/task"
)

var header = []string{"ID", "Title", "Category", "Completed", "Created At", "Done At"}

// WriteCSV writes the header and one row per task, in the order given.
// Completed is rendered Yes/No and Done At is empty while a task is open.
func WriteCSV(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range tasks {
		completed := "No"
		if t.Completed {
			completed = "Yes"
		}
		createdAt := ""
		if !t.CreatedAt.IsZero() {
			createdAt = t.CreatedAt.Format(time.RFC3339)
		}
		doneAt := ""
		if t.DoneAt != nil {
			doneAt = t.DoneAt.Format(time.RFC3339)
		}
		if err := cw.Write([]string{t.ID, t.Title, t.Category, completed, createdAt, doneAt}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile exports tasks to path, creating or truncating it.
func ToFile(path string, tasks []task.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, tasks); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DefaultFilename is the timestamped name used when the user does not pick one.
func DefaultFilename(now time.Time) string {
	return "tasks_" + now.Format("20060102_150405") + ".csv"
}
