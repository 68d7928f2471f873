// Package activity keeps the append-only log of user actions, one line per
// action: [2006-01-02 15:04:05] <action> <subject>. Logging never interferes
// with the session: if the file cannot be opened or written, lines are dropped.
package activity

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampLayout = "2006-01-02 15:04:05"

type Logger struct {
	log *logrus.Logger
}

// Open appends to the log file at path. On open failure the logger still
// works but discards everything.
func Open(path string) *Logger {
	log := logrus.New()
	log.SetFormatter(lineFormatter{})
	log.SetLevel(logrus.InfoLevel)

	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(out)
	}
	return &Logger{log: log}
}

// Record appends one action line. The subject may be empty.
func (l *Logger) Record(action, subject string) {
	l.log.WithField("subject", subject).Info(action)
}

// Warn records a non-fatal problem (e.g. a persisted file falling back to
// defaults) in the same line format.
func (l *Logger) Warn(message string) {
	l.log.Warn(message)
}

// lineFormatter renders entries as "[ts] action subject" lines.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	line := e.Message
	if subject, ok := e.Data["subject"].(string); ok && subject != "" {
		line += " " + subject
	}
	return []byte(fmt.Sprintf("[%s] %s\n", e.Time.Format(timestampLayout), strings.TrimSpace(line))), nil
}
