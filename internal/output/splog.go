// Package output provides CLI output helpers for hotflow.
package output

import (
	"fmt"
	"io"
)

// Splog provides structured logging and output
type Splog struct {
	writer  io.Writer
	verbose bool
}

// NewSplogWithWriter creates a splog instance writing to the given writer
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// SetVerbose enables debug output
func (s *Splog) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Debug writes a debug message when verbose output is enabled
func (s *Splog) Debug(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(s.writer, format+"\n", args...)
	}
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "💡 "+format+"\n", args...)
}
