package trace

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer receives events. Implementations must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop discards everything.
var Nop Tracer = nopTracer{}

// Config describes where a tracer writes.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // имеет приоритет над OutputPath
	OutputPath string    // "-" или "" означает stderr
}

// New builds a tracer for cfg. LevelOff yields Nop.
// FormatAuto picks NDJSON for *.ndjson and *.jsonl paths and text otherwise.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		switch filepath.Ext(cfg.OutputPath) {
		case ".ndjson", ".jsonl":
			format = FormatNDJSON
		}
	}

	switch {
	case cfg.Output != nil:
		return NewStreamTracer(cfg.Output, cfg.Level, format), nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return NewStreamTracer(os.Stderr, cfg.Level, format), nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("open trace output: %w", err)
	}
	bw := bufio.NewWriter(f)
	st := NewStreamTracer(bw, cfg.Level, format)
	st.bw, st.file = bw, f
	return st, nil
}

// StreamTracer serializes events to a writer as they arrive.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	bw     *bufio.Writer // только для файла, открытого New
	file   *os.File
	line   bytes.Buffer
	level  Level
	format Format
}

// NewStreamTracer writes events of the given level to w. The caller keeps ownership of w.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

// Emit writes ev if its scope passes the level filter. Write errors are dropped:
// a broken trace sink must not fail the run.
func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.line.Reset()
	appendEvent(&t.line, ev, t.format)
	_, _ = t.w.Write(t.line.Bytes())
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bw == nil {
		return nil
	}
	return t.bw.Flush()
}

// Close flushes and closes the output file opened by New.
func (t *StreamTracer) Close() error {
	err := t.Flush()
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file != nil {
		if cerr := t.file.Close(); err == nil {
			err = cerr
		}
		t.file, t.bw = nil, nil
	}
	return err
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
