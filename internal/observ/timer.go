package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer collects durations of run phases and pipeline passes.
//
// Two kinds of entries coexist. Steps opened with Begin are sequential parts of a
// run and make up the total. Passes recorded with Add or Track are summed across
// files formatted in parallel; they overlap a step and are reported without being
// added to the total. Timer is safe for concurrent use.
type Timer struct {
	mu      sync.Mutex
	entries []*entry
	passes  map[string]*entry
}

type entry struct {
	name    string
	opened  time.Time
	elapsed time.Duration
	hits    int
	note    string
	pass    bool
}

func NewTimer() *Timer {
	return &Timer{passes: make(map[string]*entry)}
}

// Begin opens a step and returns a handle for End.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, &entry{name: name, opened: time.Now(), hits: 1})
	return len(t.entries) - 1
}

// End closes the step opened by Begin. Unknown handles are ignored.
func (t *Timer) End(handle int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if handle < 0 || handle >= len(t.entries) || t.entries[handle].pass {
		return
	}
	e := t.entries[handle]
	e.elapsed = time.Since(e.opened)
	e.note = note
}

// Add accumulates d into the pass called name.
func (t *Timer) Add(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.passes[name]
	if e == nil {
		e = &entry{name: name, pass: true}
		t.passes[name] = e
		t.entries = append(t.entries, e)
	}
	e.elapsed += d
	e.hits++
}

// Track starts measuring a pass; the returned func records it.
func (t *Timer) Track(name string) func() {
	since := time.Now()
	return func() { t.Add(name, time.Since(since)) }
}

// PhaseReport is one line of a Report.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report is a snapshot of the timer in milliseconds.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report снимает копию в порядке первого появления.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	var rep Report
	var total time.Duration
	for _, e := range t.entries {
		if !e.pass {
			total += e.elapsed
		}
		rep.Phases = append(rep.Phases, PhaseReport{
			Name:       e.name,
			DurationMS: millis(e.elapsed),
			Count:      e.hits,
			Note:       e.note,
		})
	}
	rep.TotalMS = millis(total)
	return rep
}

// Summary renders the report as an aligned table for --timings.
func (t *Timer) Summary() string {
	rep := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range rep.Phases {
		line := fmt.Sprintf("  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			line += fmt.Sprintf("  x%d", p.Count)
		}
		if p.Note != "" {
			line += "  // " + p.Note
		}
		sb.WriteString(line + "\n")
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", rep.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
