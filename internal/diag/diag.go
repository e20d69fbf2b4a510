// Package diag implements the diagnostics engine shared by a tool run.
// Diagnostics are the user-facing reporting channel: tools append structured
// records during parsing and execution, and the lifecycle driver later asks
// whether any error-level record was emitted to decide the exit status.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Severity classifies a diagnostic record.
type Severity int

const (
	Note Severity = iota
	Warning
	Error
)

// String returns the lowercase label used when printing a record.
func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Record is one emitted diagnostic.
type Record struct {
	Severity Severity
	Message  string
}

// Handler receives every record emitted on an engine.
type Handler func(Record)

// Engine accumulates diagnostic records for a run and routes each one to its
// registered handlers. Its output stream is mutable so a lifecycle can move
// informational text from stdout to stderr mid-run. The engine is not
// synchronized; a CLI process runs exactly one tool invocation at a time.
type Engine struct {
	out        io.Writer
	handlers   []Handler
	records    []Record
	errorCount int
}

// NewEngine returns an engine whose default handler prints records to out
// as "<severity>: <message>".
func NewEngine(out io.Writer) *Engine {
	e := &Engine{out: out}
	e.handlers = append(e.handlers, e.printRecord)
	return e
}

func (e *Engine) printRecord(rec Record) {
	// The stream is read at print time so redirection applies to every
	// record emitted after the swap.
	fmt.Fprintf(e.out, "%s: %s\n", rec.Severity, rec.Message)
}

// AddHandler registers an additional handler invoked for every record
// emitted from that point on.
func (e *Engine) AddHandler(h Handler) {
	e.handlers = append(e.handlers, h)
}

// Emit appends a record and routes it to all handlers.
func (e *Engine) Emit(sev Severity, message string) {
	rec := Record{Severity: sev, Message: message}
	e.records = append(e.records, rec)
	if sev == Error {
		e.errorCount++
	}
	for _, h := range e.handlers {
		h(rec)
	}
}

// Emitf is Emit with fmt formatting.
func (e *Engine) Emitf(sev Severity, format string, args ...any) {
	e.Emit(sev, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any error-level record has been emitted.
func (e *Engine) HasErrors() bool {
	return e.errorCount > 0
}

// Records returns a copy of every record emitted so far.
func (e *Engine) Records() []Record {
	out := make([]Record, len(e.records))
	copy(out, e.records)
	return out
}

// SetOutput redirects the engine's print handler to w.
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine, created lazily on first use and
// writing to stderr. It accumulates records for the life of the process;
// hosts that run tools repeatedly and need isolation should construct a
// fresh engine per invocation instead.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine(os.Stderr)
	})
	return defaultEngine
}
