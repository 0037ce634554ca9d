package trace

import "time"

// Kind tells span boundaries apart from instant events.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. A whole run contains files, a file contains passes.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1
	ScopeFile
	ScopePass
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopeFile: "file", ScopePass: "pass"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one record of the trace stream.
type Event struct {
	Time     time.Time
	Seq      uint64 // монотонный номер в пределах процесса
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корневого span
	Name     string // "fmt", путь файла или имя прохода
	Detail   string
	Elapsed  time.Duration // только у KindSpanEnd
	Extra    map[string]string
}
