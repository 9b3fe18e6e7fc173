// Package progress carries the ordered status lines an installation run emits.
package progress

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Status classifies a line for consumers that need more than the message text.
type Status string

const (
	StatusInfo    Status = "info"
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Line is a single human-readable progress sentence.
type Line struct {
	Target  string `json:"target,omitempty"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Sink receives lines in the order they occur.
type Sink interface {
	Emit(line Line)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(line Line)

// Emit calls f(line).
func (f SinkFunc) Emit(line Line) {
	f(line)
}

// Discard drops every line.
var Discard Sink = SinkFunc(func(Line) {})

// Recorder keeps every emitted line in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

// Emit appends line.
func (r *Recorder) Emit(line Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Messages returns the recorded message texts.
func (r *Recorder) Messages() []string {
	lines := r.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Message
	}
	return out
}

// WriterSink prints one message per line, colored by status.
type WriterSink struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
}

// NewWriterSink returns a sink writing to out. colorize enables status colors.
func NewWriterSink(out io.Writer, colorize bool) *WriterSink {
	if out == nil {
		out = io.Discard
	}
	return &WriterSink{out: out, colorize: colorize}
}

// Emit writes line.Message followed by a newline.
func (s *WriterSink) Emit(line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := colorFor(line.Status)
	if !s.colorize || c == nil {
		_, _ = io.WriteString(s.out, line.Message+"\n")
		return
	}
	c.EnableColor()
	_, _ = c.Fprintln(s.out, line.Message)
}

func colorFor(status Status) *color.Color {
	switch status {
	case StatusSuccess:
		return color.New(color.FgGreen)
	case StatusWarning:
		return color.New(color.FgYellow)
	case StatusError:
		return color.New(color.FgRed)
	default:
		return nil
	}
}

// JSONSink writes each line as a JSON object on its own line.
type JSONSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONSink returns a sink encoding lines to out.
func NewJSONSink(out io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(out)}
}

// Emit encodes line. Encoding errors are dropped; the sink is append-only.
func (s *JSONSink) Emit(line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.enc.Encode(line)
}

// Tee fans every line out to each non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	active := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return SinkFunc(func(line Line) {
		for _, s := range active {
			s.Emit(line)
		}
	})
}
