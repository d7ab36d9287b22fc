package coverage

import "github.com/flowcov/flowcov/internal/eventlog"

// MapToElement translates one raw execution event into at most one coverage
// mark. It is total over the event kind enumeration: kinds that do not
// represent reaching a coverable element simply yield false.
func MapToElement(event eventlog.Event) (Mark, bool) {
	switch event.Kind {
	case eventlog.ElementActivated, eventlog.ElementCompleted, eventlog.SequenceFlowTaken:
		return Mark{Model: event.ModelKey, Element: event.ElementID}, true
	default:
		return Mark{}, false
	}
}
