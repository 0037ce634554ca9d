package trace

import (
	"fmt"
	"strings"
)

// Level controls how deep into the pipeline events are recorded.
type Level uint8

const (
	LevelOff    Level = iota
	LevelPhase        // run and files
	LevelDetail       // passes as well
	LevelDebug
)

var levelNames = [...]string{"off", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (want one of %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of the given scope are recorded at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelOff:
		return false
	case LevelPhase:
		return scope <= ScopeFile
	default:
		return true
	}
}
