package driver

import "time"

// Stage describes what the driver is doing with a file.
type Stage string

const (
	// StageRead loads and decodes the file.
	StageRead Stage = "read"
	// StageFormat runs the formatting pipeline.
	StageFormat Stage = "format"
	// StageWrite writes the formatted file back.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is in the given stage.
	StatusWorking Status = "working"
	// StatusDone indicates the file is finished.
	StatusDone Status = "done"
	// StatusSkipped marks a file the cache proved already formatted.
	StatusSkipped Status = "skipped"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be goroutine-safe.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

// OnEvent sends evt to the channel.
func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
