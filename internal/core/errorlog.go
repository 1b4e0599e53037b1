package core

import (
	"fmt"
	"log/slog"
)

// ErrorRecord is one appended failure message. Seq preserves insertion order
// for the end-of-run report.
type ErrorRecord struct {
	Seq     int
	Message string
}

// ErrorLog accumulates non-fatal failures over a run. It is created once at
// run start and read back when the summary is printed. Records are
// append-only; execution is strictly sequential so no locking is needed.
type ErrorLog struct {
	records []ErrorRecord
}

// NewErrorLog returns an empty log.
func NewErrorLog() *ErrorLog {
	return &ErrorLog{}
}

// Append records a failure and echoes it immediately at debug level.
func (l *ErrorLog) Append(format string, args ...any) {
	rec := ErrorRecord{
		Seq:     len(l.records) + 1,
		Message: fmt.Sprintf(format, args...),
	}
	l.records = append(l.records, rec)
	slog.Debug("cleanup error recorded", "seq", rec.Seq, "message", rec.Message)
}

// Count returns the number of recorded failures.
func (l *ErrorLog) Count() int {
	return len(l.records)
}

// Records returns a copy of all recorded failures in insertion order.
func (l *ErrorLog) Records() []ErrorRecord {
	return append([]ErrorRecord(nil), l.records...)
}
