// Package eventlog provides a read-only cursor over the append-only execution
// event log produced by the process engine.
package eventlog

// Position is the offset of an event in the log. Positions are zero based and
// strictly increasing, they establish a total order over all events of a run.
type Position int64

// TailEmpty is the sentinel tail position of a log without events.
const TailEmpty Position = -1

// Kind classifies an execution event. Only element level kinds are coverage
// relevant, all others are inert for the coverage engine but still consume a
// position.
type Kind string

const (
	ElementActivated       Kind = "ELEMENT_ACTIVATED"
	ElementCompleted       Kind = "ELEMENT_COMPLETED"
	SequenceFlowTaken      Kind = "SEQUENCE_FLOW_TAKEN"
	ProcessInstanceCreated Kind = "PROCESS_INSTANCE_CREATED"
	ProcessInstanceEnded   Kind = "PROCESS_INSTANCE_ENDED"
	VariableUpdated        Kind = "VARIABLE_UPDATED"
	TimerTriggered         Kind = "TIMER_TRIGGERED"
	JobCreated             Kind = "JOB_CREATED"
)

// Event is one entry of the execution event log.
type Event struct {
	Position  Position
	Kind      Kind
	ModelKey  string
	ElementID string
}

// Log is an in-memory append-only execution event log. The engine appends,
// the coverage collector only reads through CurrentTail and Since.
type Log struct {
	events []Event
}

// NewLog creates an empty event log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an event to the log and returns its assigned position.
func (l *Log) Append(kind Kind, modelKey string, elementID string) Position {
	position := Position(len(l.events))
	l.events = append(l.events, Event{
		Position:  position,
		Kind:      kind,
		ModelKey:  modelKey,
		ElementID: elementID,
	})
	return position
}

// CurrentTail returns the highest position currently present in the log, or
// TailEmpty if the log has no events yet.
func (l *Log) CurrentTail() Position {
	if len(l.events) == 0 {
		return TailEmpty
	}
	return l.events[len(l.events)-1].Position
}

// Since returns all events with a position strictly greater than the
// specified one, in ascending position order. The same position may be
// queried repeatedly without side effects; every call returns a fresh slice.
func (l *Log) Since(position Position) []Event {
	start := int(position) + 1
	if start < 0 {
		start = 0
	}
	if start >= len(l.events) {
		return nil
	}

	events := make([]Event, len(l.events)-start)
	copy(events, l.events[start:])
	return events
}
