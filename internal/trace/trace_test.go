package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, true},
		{LevelPhase, ScopePass, false},
		{LevelDetail, ScopePass, true},
		{LevelDebug, ScopePass, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "phase", "DETAIL", "debug"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)

	root := Begin(tr, ScopeDriver, "fmt", 0)
	pass := Begin(tr, ScopePass, "layout", root.ID())
	pass.WithExtra("words", "12").End("")
	root.End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}

	var ev struct {
		Kind     string            `json:"kind"`
		Scope    string            `json:"scope"`
		Name     string            `json:"name"`
		ParentID uint64            `json:"parent_id"`
		Extra    map[string]string `json:"extra"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "pass" || ev.Name != "layout" || ev.ParentID != root.ID() {
		t.Errorf("unexpected pass end event: %+v", ev)
	}
	if ev.Extra["words"] != "12" {
		t.Errorf("extra lost: %v", ev.Extra)
	}
}

func TestStreamTracerFiltersScope(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	Begin(tr, ScopePass, "resolve", 0).End("")
	if buf.Len() != 0 {
		t.Errorf("pass span emitted at phase level: %q", buf.String())
	}
	Point(tr, ScopeFile, "cache-hit", "a.rs", 0)
	if !strings.Contains(buf.String(), "file:cache-hit (a.rs)") {
		t.Errorf("unexpected text output: %q", buf.String())
	}
}

func TestNopAndContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("expected Nop from empty context")
	}
	span := Begin(Nop, ScopeDriver, "fmt", 0)
	if span.End("") != 0 || span.ID() != 0 {
		t.Error("nop span must be inert")
	}

	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	root := Begin(FromContext(ctx), ScopeDriver, "fmt", 0)
	ctx = WithParent(ctx, root)
	if ParentFrom(ctx) != root.ID() || root.ID() == 0 {
		t.Errorf("parent not propagated: %d vs %d", ParentFrom(ctx), root.ID())
	}
}

func TestNewOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("LevelOff tracer must be disabled")
	}
}
