package adapter

import (
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/contractfind/internal/model"
)

// ReportWriter appends lines to an open report.
type ReportWriter interface {
	WriteLine(line string) error
}

// ReportStore manages the report file lifecycle: one truncation per run,
// then any number of scoped append sessions.
type ReportStore interface {
	// Reset creates the report or truncates it to zero length.
	Reset(path m.Path) error
	// Append opens the report in append mode, hands it to fn and closes it
	// once fn returns.
	Append(path m.Path, fn func(w ReportWriter) error) error
}

// LocalReportStore keeps reports as plain UTF-8 text files.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// Reset implements ReportStore.
func (rs *LocalReportStore) Reset(path m.Path) error {
	// #nosec G304 - the report path is resolved from configuration
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("reset report %s: %w", path, err)
	}

	return f.Close()
}

// Append implements ReportStore.
func (rs *LocalReportStore) Append(path m.Path, fn func(w ReportWriter) error) (err error) {
	// #nosec G304 - the report path is resolved from configuration
	f, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report %s: %w", path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report %s: %w", path, closeErr)
		}
	}()

	return fn(&lineWriter{w: f})
}

type lineWriter struct {
	w io.Writer
}

func (lw *lineWriter) WriteLine(line string) error {
	_, err := io.WriteString(lw.w, line+"\n")
	return err
}
