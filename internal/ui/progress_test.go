package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"typeset/internal/driver"
)

func TestApplyTracksRows(t *testing.T) {
	m := NewProgressModel("fmt", []string{"a.rs", "b.rs", "c.rs"}, nil).(*progressModel)

	m.apply(driver.Event{File: "a.rs", Stage: driver.StageFormat, Status: driver.StatusWorking})
	m.apply(driver.Event{File: "b.rs", Stage: driver.StageFormat, Status: driver.StatusSkipped, Elapsed: 2 * time.Millisecond})
	m.apply(driver.Event{File: "c.rs", Stage: driver.StageFormat, Status: driver.StatusError, Err: errors.New("c.rs: lexical errors")})
	m.apply(driver.Event{File: "missing.rs", Status: driver.StatusDone})

	want := []rowState{rowFormatting, rowCached, rowFailed}
	for i, st := range want {
		if m.rows[i].state != st {
			t.Errorf("row %d state = %s, want %s", i, m.rows[i].state, st)
		}
	}
	if got := m.count(rowState.final); got != 2 {
		t.Errorf("final rows = %d, want 2", got)
	}

	view := m.View()
	for _, want := range []string{"fmt (2/3)", "formatting", "cached", "2ms", "c.rs: lexical errors", "0 done, 1 cached, 1 failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		ev   driver.Event
		want rowState
	}{
		{driver.Event{Stage: driver.StageRead, Status: driver.StatusQueued}, rowQueued},
		{driver.Event{Stage: driver.StageRead, Status: driver.StatusWorking}, rowReading},
		{driver.Event{Stage: driver.StageWrite, Status: driver.StatusWorking}, rowWriting},
		{driver.Event{Stage: driver.StageFormat, Status: driver.StatusDone}, rowDone},
	}
	for _, tt := range tests {
		if got := stateOf(tt.ev); got != tt.want {
			t.Errorf("stateOf(%+v) = %s, want %s", tt.ev, got, tt.want)
		}
	}
}

func TestDoneMsgQuits(t *testing.T) {
	m := NewProgressModel("fmt", []string{"a.rs"}, nil)
	next, cmd := m.Update(doneMsg{})
	if cmd == nil || !next.(*progressModel).closed {
		t.Fatal("doneMsg must close the model and quit")
	}
	if !strings.Contains(next.View(), "done: fmt") {
		t.Errorf("unexpected final view:\n%s", next.View())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c must quit")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.rs", 20, "short.rs"},
		{"some/long/path/file.rs", 10, "some/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
