package pong

// EventKind identifies what happened during an Update.
type EventKind uint8

const (
	EventServe      EventKind = iota // ball velocity reset; Side is the direction of travel
	EventScore                       // Side scored; Score holds the new totals
	EventPaddleHit                   // ball bounced off Side's paddle
	EventWallBounce                  // ball bounced off the top or bottom wall
	EventRecenter                    // ball strayed past the safety margin and was recentered
)

var eventKindName = map[EventKind]string{
	EventServe:      "serve",
	EventScore:      "score",
	EventPaddleHit:  "paddle_hit",
	EventWallBounce: "wall_bounce",
	EventRecenter:   "recenter",
}

func (k EventKind) String() string {
	return eventKindName[k]
}

// Event is emitted by a Session while it updates.
type Event struct {
	Kind  EventKind
	Side  Side
	Score Score
	Frame uint64
}

// EventSink receives match events. Sinks are called synchronously from
// Session.Update and must not call back into the session.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to an EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) {
	f(event)
}

type discardSink struct{}

func (discardSink) EmitEvent(Event) {}

type multiSink []EventSink

func (m multiSink) EmitEvent(event Event) {
	for _, s := range m {
		s.EmitEvent(event)
	}
}

// MultiSink fans every event out to sinks in order. Nil sinks are skipped.
func MultiSink(sinks ...EventSink) EventSink {
	m := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

// EventLog records every event it receives.
type EventLog struct {
	Events []Event
}

// EmitEvent appends event to the log.
func (l *EventLog) EmitEvent(event Event) {
	l.Events = append(l.Events, event)
}

// Count returns how many recorded events are of the given kind.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of the given kind.
func (l *EventLog) Last(kind EventKind) (Event, bool) {
	for i := len(l.Events) - 1; i >= 0; i-- {
		if l.Events[i].Kind == kind {
			return l.Events[i], true
		}
	}
	return Event{}, false
}

// Reset drops all recorded events.
func (l *EventLog) Reset() {
	l.Events = l.Events[:0]
}
