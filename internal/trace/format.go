package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Format selects how events are serialized.
type Format uint8

const (
	FormatAuto Format = iota // по расширению файла
	FormatText
	FormatNDJSON
)

// ParseFormat accepts auto, text, ndjson or json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format %q (want auto|text|ndjson)", s)
}

type jsonEvent struct {
	Time      string            `json:"time"`
	Seq       uint64            `json:"seq"`
	Kind      string            `json:"kind"`
	Scope     string            `json:"scope"`
	SpanID    uint64            `json:"span_id"`
	ParentID  uint64            `json:"parent_id,omitempty"`
	Name      string            `json:"name"`
	Detail    string            `json:"detail,omitempty"`
	ElapsedUS int64             `json:"elapsed_us,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// appendEvent serializes ev onto buf, one line per event.
func appendEvent(buf *bytes.Buffer, ev *Event, format Format) {
	if format == FormatNDJSON {
		data, err := json.Marshal(jsonEvent{
			Time:      ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
			Seq:       ev.Seq,
			Kind:      ev.Kind.String(),
			Scope:     ev.Scope.String(),
			SpanID:    ev.SpanID,
			ParentID:  ev.ParentID,
			Name:      ev.Name,
			Detail:    ev.Detail,
			ElapsedUS: ev.Elapsed.Microseconds(),
			Extra:     ev.Extra,
		})
		if err != nil {
			return
		}
		buf.Write(data)
		buf.WriteByte('\n')
		return
	}
	appendText(buf, ev)
}

// appendText пишет строку вида
//
//	#12       → file:src/main.rs
//	#15       ← file:src/main.rs [1.2ms] {changed=true}
func appendText(buf *bytes.Buffer, ev *Event) {
	fmt.Fprintf(buf, "#%-6d ", ev.Seq)
	for s := ScopeDriver; s < ev.Scope; s++ {
		buf.WriteString("  ")
	}
	switch ev.Kind {
	case KindSpanBegin:
		buf.WriteString("→ ")
	case KindSpanEnd:
		buf.WriteString("← ")
	default:
		buf.WriteString("• ")
	}
	buf.WriteString(ev.Scope.String())
	buf.WriteByte(':')
	buf.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(buf, " (%s)", ev.Detail)
	}
	if ev.Kind == KindSpanEnd {
		fmt.Fprintf(buf, " [%s]", ev.Elapsed)
	}
	if len(ev.Extra) > 0 {
		keys := make([]string, 0, len(ev.Extra))
		for k := range ev.Extra {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		buf.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(k + "=" + ev.Extra[k])
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('\n')
}
