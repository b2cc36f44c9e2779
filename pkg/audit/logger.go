// Package audit implements the audit trail: one line per command
// outcome, written to a live transcript and to the durable audit log.
package audit

import (
	"fmt"
	"io"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/fsutil"
)

// Logger defines the interface the engine logs outcomes through.
type Logger interface {
	Log(line string) error
}

// FileLogger appends each line to the durable log with a scoped
// open/write/close, then echoes it to the live transcript. Any
// durable-write failure is a storage failure and fatal to the run.
type FileLogger struct {
	path       string
	transcript io.Writer
}

// NewLogger creates a logger writing the durable log at path and the
// live transcript to w (stdout in production, a buffer in tests).
func NewLogger(path string, w io.Writer) *FileLogger {
	return &FileLogger{path: path, transcript: w}
}

// Log records one audit line.
func (l *FileLogger) Log(line string) error {
	if err := fsutil.AppendLine(l.path, line); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}
	if _, err := fmt.Fprintln(l.transcript, line); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}
	return nil
}
