package trace

import (
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

// Span is an open interval of work. A Span obtained from a disabled tracer is inert.
type Span struct {
	t       Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	extra   map[string]string
}

func enabled(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Begin opens a span under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !enabled(t, scope) {
		return &Span{}
	}
	s := &Span{
		t:       t,
		id:      spanIDs.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(&Event{
		Time:     s.started,
		Seq:      seq.Add(1),
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parent,
		Name:     name,
	})
	return s
}

// End closes the span and returns how long it was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.t == nil {
		return 0
	}
	now := time.Now()
	elapsed := now.Sub(s.started)
	s.t.Emit(&Event{
		Time:     now,
		Seq:      seq.Add(1),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   detail,
		Elapsed:  elapsed,
		Extra:    s.extra,
	})
	return elapsed
}

// WithExtra attaches a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.t == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point records an instant event such as a cache hit.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !enabled(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      seq.Add(1),
		Kind:     KindPoint,
		Scope:    scope,
		SpanID:   spanIDs.Add(1),
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
