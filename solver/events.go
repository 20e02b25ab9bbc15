// SPDX-License-Identifier: MIT

package solver

import "fmt"

// EventKind classifies a progress Event.
type EventKind int

const (
	// EventEnumerated: Exact finished enumerating; Mappings is |M|.
	EventEnumerated EventKind = iota
	// EventCombinations: Exact progress; Done of Total combinations evaluated.
	EventCombinations
	// EventStageStarted: Approx stage Stage of K begins.
	EventStageStarted
	// EventTrial: Approx trial Trial of Trials within Stage was accounted.
	EventTrial
	// EventStageCompleted: Approx stage Stage of K chose a mapping adding Cost.
	EventStageCompleted
)

// Event is a progress notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	Mappings int // EventEnumerated

	Done  int // EventCombinations
	Total int // EventCombinations

	Stage  int // stage events, EventTrial
	K      int // stage events
	Trial  int // EventTrial, 1-based
	Trials int // EventTrial
	Cost   int // EventStageCompleted
}

// String renders e for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventEnumerated:
		return fmt.Sprintf("enumerated %d mappings", e.Mappings)
	case EventCombinations:
		return fmt.Sprintf("combinations %d/%d", e.Done, e.Total)
	case EventStageStarted:
		return fmt.Sprintf("stage %d/%d started", e.Stage, e.K)
	case EventTrial:
		return fmt.Sprintf("stage %d trial %d/%d", e.Stage, e.Trial, e.Trials)
	case EventStageCompleted:
		return fmt.Sprintf("stage %d/%d completed (+%d)", e.Stage, e.K, e.Cost)
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}

// Observer receives progress events. Calls for one solve are sequential, so
// implementations need no locking of their own state, but they run on the
// solver's goroutines and should return quickly.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) { f(e) }

// emitter returns a non-nil emit function for o.
func emitter(o Observer) func(Event) {
	if o == nil {
		return func(Event) {}
	}

	return o.OnEvent
}
