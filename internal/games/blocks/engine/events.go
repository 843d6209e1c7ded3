package engine

import (
	"github.com/charmbracelet/log"
)

// EventType tags a notification sent to a Sink.
type EventType int

const (
	EventWallPushStart EventType = iota
	EventWallPushStop
	EventTrail
	EventLanding
	EventSpin
	EventScore
)

func (t EventType) String() string {
	switch t {
	case EventWallPushStart:
		return "wall_push_start"
	case EventWallPushStop:
		return "wall_push_stop"
	case EventTrail:
		return "trail"
	case EventLanding:
		return "landing"
	case EventSpin:
		return "spin"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}

// Side is the wall a piece pushes against.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Landing describes how a piece came to lock.
type Landing int

const (
	LandingNormal Landing = iota
	LandingSoft
	LandingHard
)

func (l Landing) String() string {
	switch l {
	case LandingSoft:
		return "soft"
	case LandingHard:
		return "hard"
	default:
		return "normal"
	}
}

// Trail is one step of a hard drop, used for drop-trail effects.
type Trail struct {
	X, Y   int
	Kind   Kind
	Step   int
	Width  int
	Height int
}

// Event is a fire-and-forget notification. Only the fields relevant to Type
// are set.
type Event struct {
	Type    EventType
	Side    Side
	Trail   Trail
	Landing Landing
	Spin    SpinResult
	Chain   SpinKind
	Points  int
}

// Sink receives engine notifications.
type Sink interface {
	Notify(e Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// Notify calls f(e).
func (f SinkFunc) Notify(e Event) { f(e) }

// Fanout forwards every event to each sink in order.
type Fanout []Sink

// Notify implements Sink.
func (f Fanout) Notify(e Event) {
	for _, s := range f {
		if s != nil {
			s.Notify(e)
		}
	}
}

type nopSink struct{}

func (nopSink) Notify(Event) {}

// Recorder keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Notify implements Sink.
func (r *Recorder) Notify(e Event) {
	r.Events = append(r.Events, e)
}

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// LogSink writes events to a structured logger. Trail and wall-push events are
// noisy and logged at debug level.
type LogSink struct {
	Logger *log.Logger
}

// Notify implements Sink.
func (s LogSink) Notify(e Event) {
	if s.Logger == nil {
		return
	}
	switch e.Type {
	case EventSpin:
		s.Logger.Info("spin", "kind", e.Spin.Kind, "chain", e.Chain, "reason", e.Spin.Reason)
	case EventScore:
		s.Logger.Info("score", "points", e.Points)
	case EventLanding:
		s.Logger.Debug("landing", "kind", e.Landing)
	case EventTrail:
		s.Logger.Debug("trail", "x", e.Trail.X, "y", e.Trail.Y, "step", e.Trail.Step)
	default:
		s.Logger.Debug(e.Type.String(), "side", e.Side)
	}
}
