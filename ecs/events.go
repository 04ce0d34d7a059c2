package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// TrackingEventKind identifies tracking range transitions.
type TrackingEventKind string

const (
	TrackingLost     TrackingEventKind = "tracking_lost"
	TrackingAcquired TrackingEventKind = "tracking_acquired"
)

// TrackingEvent is emitted when an entity enters or leaves tracking range.
type TrackingEvent struct {
	Entity Entity
	Kind   TrackingEventKind
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
